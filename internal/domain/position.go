package domain

import "strings"

// PositionGroup is the tactical role bucket a player is valued against.
type PositionGroup string

const (
	GroupFW PositionGroup = "FW"
	GroupAM PositionGroup = "AM"
	GroupCM PositionGroup = "CM"
	GroupDM PositionGroup = "DM"
	GroupDF PositionGroup = "DF"
	GroupGK PositionGroup = "GK"
)

// AllGroups lists every position group in a fixed order.
var AllGroups = []PositionGroup{GroupFW, GroupAM, GroupCM, GroupDM, GroupDF, GroupGK}

// Valid reports whether g is one of the enumerated groups.
func (g PositionGroup) Valid() bool {
	switch g {
	case GroupFW, GroupAM, GroupCM, GroupDM, GroupDF, GroupGK:
		return true
	}
	return false
}

// PeerSubstring returns the raw-position substring used to select the peer
// population for g. The source data only distinguishes FW/MF/DF/GK, so the
// three midfield groups all compare against "MF" peers.
func (g PositionGroup) PeerSubstring() string {
	switch g {
	case GroupAM, GroupCM, GroupDM:
		return "MF"
	default:
		return string(g)
	}
}

// ParsePositionGroup categorizes a raw position string into a group.
// Rules apply in a fixed precedence order: keeper first, then the mixed
// midfield/forward and midfield/defender combos, then the single tags.
// Anything unrecognized falls back to CM, the statistically "middle"
// profile.
func ParsePositionGroup(pos string) PositionGroup {
	p := strings.ToUpper(pos)
	switch {
	case strings.Contains(p, "GK"):
		return GroupGK
	case strings.Contains(p, "MF,FW") || strings.Contains(p, "FW,MF"):
		return GroupAM
	case strings.Contains(p, "MF,DF") || strings.Contains(p, "DF,MF"):
		return GroupDM
	case strings.Contains(p, "FW"):
		return GroupFW
	case strings.Contains(p, "MF"):
		return GroupCM
	case strings.Contains(p, "DF"):
		return GroupDF
	}
	return GroupCM
}
