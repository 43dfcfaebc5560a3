package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders a valuation report as Markdown.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	res := r.Result
	sb.WriteString(fmt.Sprintf("# Valuation Report: %s\n\n", res.Name))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Position Group | %s |\n", res.PositionGroup))
	sb.WriteString(fmt.Sprintf("| Age | %.1f |\n", res.Age))
	sb.WriteString(fmt.Sprintf("| Squad | %s |\n", res.Squad))
	sb.WriteString(fmt.Sprintf("| Seasons | %s |\n", strings.Join(res.Seasons, ", ")))
	sb.WriteString(fmt.Sprintf("| P-Score | %.2f / 10 |\n", res.PScore))
	sb.WriteString(fmt.Sprintf("| Market Value | £%.2fm |\n", res.MarketValueM))
	sb.WriteString("\n")

	// Percentile breakdown
	sb.WriteString("## Percentile Breakdown\n\n")
	rows := r.Breakdown()
	if len(rows) > 0 {
		sb.WriteString("| Metric | Percentile | Polarity |\n")
		sb.WriteString("|--------|-----------|----------|\n")
		for _, row := range rows {
			polarity := "higher is better"
			if !row.HigherIsBetter {
				polarity = "lower is better"
			}
			sb.WriteString(fmt.Sprintf("| %s | %.1f | %s |\n", row.Metric, row.Percentile, polarity))
		}
	} else {
		sb.WriteString("No percentile breakdown available.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
