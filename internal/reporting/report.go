// Package reporting renders valuation results for terminals and files.
package reporting

import (
	"time"

	"vigiball-lab/internal/domain"
)

// Report pairs a valuation result with the ordered metric profile it was
// scored on, so renderers can emit the breakdown in profile order.
type Report struct {
	GeneratedAt time.Time
	Result      *domain.ValuationResult
	Profile     domain.MetricProfile
}

// NewReport builds a report for a valuation result.
func NewReport(result *domain.ValuationResult, profile domain.MetricProfile) *Report {
	return &Report{
		GeneratedAt: time.Now().UTC(),
		Result:      result,
		Profile:     profile,
	}
}

// BreakdownRow is one metric's percentile in display order.
type BreakdownRow struct {
	Metric         string
	Percentile     float64 // 0-100
	HigherIsBetter bool
}

// Breakdown returns the percentile rows in profile order. Metrics missing
// from the result (unknown profile entries) are skipped.
func (r *Report) Breakdown() []BreakdownRow {
	rows := make([]BreakdownRow, 0, len(r.Profile))
	for _, m := range r.Profile {
		pct, ok := r.Result.Percentiles[m.Name]
		if !ok {
			continue
		}
		rows = append(rows, BreakdownRow{
			Metric:         m.Name,
			Percentile:     pct,
			HigherIsBetter: m.HigherIsBetter,
		})
	}
	return rows
}
