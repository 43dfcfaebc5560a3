package reporting

import (
	"fmt"
	"strings"
)

// RenderText renders the terminal valuation report.
func RenderText(r *Report) string {
	var sb strings.Builder

	res := r.Result
	sb.WriteString(fmt.Sprintf("--- Valuation Report: %s ---\n", res.Name))
	sb.WriteString(fmt.Sprintf("Position: %s | Age: %.1f | Squad: %s\n", res.PositionGroup, res.Age, res.Squad))
	sb.WriteString(fmt.Sprintf("Seasons:  %s\n", strings.Join(res.Seasons, ", ")))
	sb.WriteString(fmt.Sprintf("P-Score:  %.2f / 10\n", res.PScore))
	sb.WriteString(fmt.Sprintf("Value:    £%.2fm\n", res.MarketValueM))
	sb.WriteString("Stat Breakdown (Percentiles):\n")
	for _, row := range r.Breakdown() {
		sb.WriteString(fmt.Sprintf("  - %s: %.1fth percentile\n", row.Metric, row.Percentile))
	}

	return sb.String()
}
