package ingestion

import (
	"math"
	"strings"
	"testing"
)

func TestParseSeasonCSV_HeaderMapping(t *testing.T) {
	data := `Player,Nation,Pos,Squad,Comp,Age,90s,xG,G-PK,Succ%
Dario Venn,it ITA,FW,Testona,Serie A,24-100,28.5,18.2,15,52.3%
`
	records, err := ParseSeasonCSV(strings.NewReader(data), "2025-2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.Name != "Dario Venn" {
		t.Errorf("expected name Dario Venn, got %q", r.Name)
	}
	if r.Pos != "FW" || r.Squad != "Testona" || r.Comp != "Serie A" {
		t.Errorf("identity fields mismatched: %+v", r)
	}
	if r.Season != "2025-2026" {
		t.Errorf("expected season tag 2025-2026, got %q", r.Season)
	}
	if r.N90s == nil || *r.N90s != 28.5 {
		t.Errorf("expected n90s 28.5, got %v", r.N90s)
	}
	if r.XG == nil || *r.XG != 18.2 {
		t.Errorf("expected xg 18.2, got %v", r.XG)
	}
	// G-PK maps to npg
	if r.NPG == nil || *r.NPG != 15.0 {
		t.Errorf("expected npg 15.0, got %v", r.NPG)
	}
}

func TestParseSeasonCSV_AgeYearsDaysForm(t *testing.T) {
	data := `Player,Age
Test Player,25-082
`
	records, err := ParseSeasonCSV(strings.NewReader(data), "2025-2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 25 + 82/365 = 25.2247
	want := 25.0 + 82.0/365.0
	if records[0].Age == nil || math.Abs(*records[0].Age-want) > 0.0001 {
		t.Errorf("expected age %.4f, got %v", want, records[0].Age)
	}
}

func TestParseSeasonCSV_PercentSignStripped(t *testing.T) {
	data := `Player,Cmp%,Save%
Passer,87.5%,
`
	records, err := ParseSeasonCSV(strings.NewReader(data), "2025-2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := records[0]
	if r.CmpPct == nil || *r.CmpPct != 87.5 {
		t.Errorf("expected cmp_pct 87.5, got %v", r.CmpPct)
	}
	// Blank cells stay nil, not zero
	if r.SavePct != nil {
		t.Errorf("expected nil save_pct for a blank cell, got %f", *r.SavePct)
	}
}

func TestParseSeasonCSV_SkipsNamelessRows(t *testing.T) {
	data := `Player,xG
First,1.0
,2.0
Third,3.0
`
	records, err := ParseSeasonCSV(strings.NewReader(data), "2025-2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records after skipping the nameless row, got %d", len(records))
	}
	if records[0].Name != "First" || records[1].Name != "Third" {
		t.Errorf("unexpected records: %q, %q", records[0].Name, records[1].Name)
	}
}

func TestParseSeasonCSV_UnknownHeadersIgnored(t *testing.T) {
	data := `Rk,Player,Matches,xG
1,Test Player,38,5.5
`
	records, err := ParseSeasonCSV(strings.NewReader(data), "2025-2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].XG == nil || *records[0].XG != 5.5 {
		t.Errorf("expected xg 5.5 despite unknown columns, got %v", records[0].XG)
	}
}

func TestParseSeasonCSV_MissingPlayerColumn(t *testing.T) {
	data := `Squad,xG
Testona,5.5
`
	_, err := ParseSeasonCSV(strings.NewReader(data), "2025-2026")
	if err == nil {
		t.Fatal("expected an error for a file without a Player column")
	}
}

func TestParseFloat(t *testing.T) {
	if v := parseFloat("12.5"); v == nil || *v != 12.5 {
		t.Errorf("expected 12.5, got %v", v)
	}
	if v := parseFloat("87.5%"); v == nil || *v != 87.5 {
		t.Errorf("expected 87.5 from a percent cell, got %v", v)
	}
	if v := parseFloat(""); v != nil {
		t.Errorf("expected nil for blank, got %f", *v)
	}
	if v := parseFloat("n/a"); v != nil {
		t.Errorf("expected nil for junk, got %f", *v)
	}
}

func TestParseAge(t *testing.T) {
	if v := parseAge("25-082"); v == nil || math.Abs(*v-25.2247) > 0.0001 {
		t.Errorf("expected 25.2247, got %v", v)
	}
	// Plain numbers pass through
	if v := parseAge("31"); v == nil || *v != 31.0 {
		t.Errorf("expected 31.0, got %v", v)
	}
	if v := parseAge(""); v != nil {
		t.Errorf("expected nil for blank, got %f", *v)
	}
	if v := parseAge("25-xyz"); v != nil {
		t.Errorf("expected nil for a malformed days part, got %f", *v)
	}
}
