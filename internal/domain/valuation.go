package domain

// ValuationResult is the output of a single valuation call. It is built
// fresh per call and never persisted.
type ValuationResult struct {
	Name          string             `json:"name"`
	PositionGroup PositionGroup      `json:"position_group"`
	Age           float64            `json:"age"`            // 1 decimal
	Squad         string             `json:"squad"`
	PScore        float64            `json:"p_score"`        // 0-10, 2 decimals
	MarketValueM  float64            `json:"market_value_m"` // millions, 2 decimals
	Percentiles   map[string]float64 `json:"percentiles"`    // 0-100, 1 decimal, keyed by metric
	Seasons       []string           `json:"seasons"`        // seasons blended into the score
}
