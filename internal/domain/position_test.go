package domain

import "testing"

func TestParsePositionGroup_Precedence(t *testing.T) {
	cases := []struct {
		pos  string
		want PositionGroup
	}{
		{"GK", GroupGK},
		{"GK,DF", GroupGK}, // keeper tag wins over everything
		{"MF,FW", GroupAM},
		{"FW,MF", GroupAM},
		{"MF,DF", GroupDM},
		{"DF,MF", GroupDM},
		{"FW", GroupFW},
		{"FW,DF", GroupFW}, // FW outranks DF once the combos miss
		{"MF", GroupCM},
		{"DF", GroupDF},
		{"", GroupCM}, // unrecognized falls back to CM
		{"???", GroupCM},
		{"mf,fw", GroupAM},
		{"df,mf", GroupDM},
	}

	for _, c := range cases {
		if got := ParsePositionGroup(c.pos); got != c.want {
			t.Errorf("ParsePositionGroup(%q) = %s, want %s", c.pos, got, c.want)
		}
	}
}

func TestPeerSubstring(t *testing.T) {
	// All three midfield groups share the MF peer pool
	for _, g := range []PositionGroup{GroupAM, GroupCM, GroupDM} {
		if got := g.PeerSubstring(); got != "MF" {
			t.Errorf("%s.PeerSubstring() = %q, want MF", g, got)
		}
	}
	for _, g := range []PositionGroup{GroupFW, GroupDF, GroupGK} {
		if got := g.PeerSubstring(); got != string(g) {
			t.Errorf("%s.PeerSubstring() = %q, want %s", g, got, g)
		}
	}
}

func TestPositionGroupValid(t *testing.T) {
	for _, g := range AllGroups {
		if !g.Valid() {
			t.Errorf("expected %s to be valid", g)
		}
	}
	if PositionGroup("ST").Valid() {
		t.Error("expected ST to be invalid")
	}
	if PositionGroup("").Valid() {
		t.Error("expected empty group to be invalid")
	}
}
