package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders valuation results as CSV. The percentile breakdown is
// packed into one field as metric=value pairs in profile order.
func RenderCSV(reports []*Report) string {
	var sb strings.Builder

	sb.WriteString("name,position_group,age,squad,p_score,market_value_m,percentiles\n")

	for _, r := range reports {
		res := r.Result
		sb.WriteString(fmt.Sprintf("%s,%s,%.1f,%s,%.2f,%.2f,%s\n",
			csvEscape(res.Name),
			res.PositionGroup,
			res.Age,
			csvEscape(res.Squad),
			res.PScore,
			res.MarketValueM,
			packPercentiles(r.Breakdown()),
		))
	}

	return sb.String()
}

func packPercentiles(rows []BreakdownRow) string {
	pairs := make([]string, len(rows))
	for i, row := range rows {
		pairs[i] = fmt.Sprintf("%s=%.1f", row.Metric, row.Percentile)
	}
	return strings.Join(pairs, ";")
}

// csvEscape quotes fields containing commas or quotes.
func csvEscape(s string) string {
	if strings.ContainsAny(s, `",`) {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
