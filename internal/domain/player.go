package domain

// PlayerRecord represents one (player, season) row in the players table.
// Metric columns are nullable in the source data, so every metric is an
// optional float. Age is fractional years, pre-decoded at ingestion from
// the "years-days" form the data source uses.
type PlayerRecord struct {
	ID     int64
	Name   string
	Nation string
	Pos    string // raw position string, e.g. "MF,FW"
	Squad  string
	Comp   string
	Season string

	Age  *float64 // fractional years
	N90s *float64 // 90-minute equivalents played

	// Attacking
	XG         *float64
	NPG        *float64
	XAG        *float64
	GCA90      *float64
	PrgC       *float64
	SuccPct    *float64
	SoTPct     *float64
	TouchesBox *float64

	// Midfield
	KP            *float64
	CmpPct        *float64
	PrgP          *float64
	TklPct        *float64
	Interceptions *float64
	Miscontrols   *float64
	Dispossessed  *float64

	// Defending
	AerialWonPct *float64
	DefActAtt3rd *float64
	Recoveries   *float64
	PrgPassDist  *float64
	Blocks       *float64
	TklInt       *float64
	Clearances   *float64

	// Goalkeeping
	PSxGPlusMinus *float64
	SavePct       *float64
	CrossStopPct  *float64
	LaunchPct     *float64
	OPASweeper    *float64
}

// MetricColumns lists every numeric metric column, in players table order.
// n90s is deliberately excluded: it is the normalizer, not a metric.
var MetricColumns = []string{
	"xg", "npg", "xag", "gca90", "prgc", "succ_pct", "sot_pct", "touches_box",
	"kp", "cmp_pct", "prgp", "tkl_pct", "interceptions", "miscontrols", "dispossessed",
	"aerial_won_pct", "def_act_att_3rd", "recoveries", "prg_pass_dist", "blocks", "tkl_int", "clearances",
	"psxg_plus_minus", "save_pct", "cross_stop_pct", "launch_pct", "opa_sweeper",
}

// Metric returns a pointer to the field backing the named metric column,
// or nil for an unknown name. Callers may read or write through it.
func (r *PlayerRecord) Metric(name string) **float64 {
	switch name {
	case "xg":
		return &r.XG
	case "npg":
		return &r.NPG
	case "xag":
		return &r.XAG
	case "gca90":
		return &r.GCA90
	case "prgc":
		return &r.PrgC
	case "succ_pct":
		return &r.SuccPct
	case "sot_pct":
		return &r.SoTPct
	case "touches_box":
		return &r.TouchesBox
	case "kp":
		return &r.KP
	case "cmp_pct":
		return &r.CmpPct
	case "prgp":
		return &r.PrgP
	case "tkl_pct":
		return &r.TklPct
	case "interceptions":
		return &r.Interceptions
	case "miscontrols":
		return &r.Miscontrols
	case "dispossessed":
		return &r.Dispossessed
	case "aerial_won_pct":
		return &r.AerialWonPct
	case "def_act_att_3rd":
		return &r.DefActAtt3rd
	case "recoveries":
		return &r.Recoveries
	case "prg_pass_dist":
		return &r.PrgPassDist
	case "blocks":
		return &r.Blocks
	case "tkl_int":
		return &r.TklInt
	case "clearances":
		return &r.Clearances
	case "psxg_plus_minus":
		return &r.PSxGPlusMinus
	case "save_pct":
		return &r.SavePct
	case "cross_stop_pct":
		return &r.CrossStopPct
	case "launch_pct":
		return &r.LaunchPct
	case "opa_sweeper":
		return &r.OPASweeper
	}
	return nil
}

// MetricValue returns the value of the named metric, or nil if the metric
// is unknown or absent for this record.
func (r *PlayerRecord) MetricValue(name string) *float64 {
	p := r.Metric(name)
	if p == nil {
		return nil
	}
	return *p
}

// SetMetric stores a value for the named metric. Unknown names are ignored.
func (r *PlayerRecord) SetMetric(name string, v *float64) {
	p := r.Metric(name)
	if p == nil {
		return
	}
	*p = v
}
