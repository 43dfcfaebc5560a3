package domain

import "strings"

// ProfileMetric is one entry of a position group's metric profile.
type ProfileMetric struct {
	Name           string
	HigherIsBetter bool
}

// MetricProfile is the ordered set of metrics a position group is scored
// on. Order matters for report output; polarity decides whether a high
// percentile is good (true) or bad (false, e.g. miscontrols).
type MetricProfile []ProfileMetric

// DefaultProfiles returns the hand-curated metric profile per position
// group. These are fixed editorial choices, not derived from data.
func DefaultProfiles() map[PositionGroup]MetricProfile {
	return map[PositionGroup]MetricProfile{
		GroupFW: {
			{"xg", true}, {"npg", true}, {"xag", true}, {"gca90", true},
			{"prgc", true}, {"succ_pct", true}, {"sot_pct", true}, {"touches_box", true},
		},
		GroupAM: {
			{"xag", true}, {"kp", true}, {"gca90", true}, {"prgp", true},
			{"prgc", true}, {"cmp_pct", true}, {"dispossessed", false},
		},
		GroupCM: {
			{"xag", true}, {"kp", true}, {"cmp_pct", true}, {"prgp", true},
			{"tkl_pct", true}, {"interceptions", true}, {"miscontrols", false}, {"dispossessed", false},
		},
		GroupDM: {
			{"tkl_pct", true}, {"interceptions", true}, {"blocks", true}, {"recoveries", true},
			{"prgp", true}, {"cmp_pct", true}, {"miscontrols", false},
		},
		GroupDF: {
			{"aerial_won_pct", true}, {"def_act_att_3rd", true}, {"recoveries", true},
			{"prg_pass_dist", true}, {"blocks", true}, {"tkl_int", true}, {"clearances", true},
		},
		GroupGK: {
			{"psxg_plus_minus", true}, {"save_pct", true}, {"cross_stop_pct", true},
			{"launch_pct", true}, {"opa_sweeper", true},
		},
	}
}

// IsRateMetric reports whether a metric is already normalized (a
// percentage or a per-90 statistic) and must not be divided by n90s
// before comparison.
func IsRateMetric(name string) bool {
	return name == "gca90" || strings.Contains(name, "pct")
}
