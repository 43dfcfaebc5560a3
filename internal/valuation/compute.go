package valuation

import (
	"math"
	"sort"

	"vigiball-lab/internal/domain"
)

// percentileOfScore returns the percentile rank (0.0-1.0) of value within
// population, using the mean-rank tie convention:
//
//	(count_strictly_below + count_at_or_below) / (2n)
//
// An empty population yields 0.5 (neutral) so P-Scores stay defined even
// for groups with no qualifying peers.
func percentileOfScore(population []float64, value float64) float64 {
	n := len(population)
	if n == 0 {
		return 0.5
	}

	below := 0
	atOrBelow := 0
	for _, v := range population {
		if v < value {
			below++
		}
		if v <= value {
			atOrBelow++
		}
	}
	return float64(below+atOrBelow) / float64(2*n)
}

// metricSample extracts the comparison value of a metric from a record.
// Rate metrics (percentages, per-90 statistics) are used as-is. Volume
// metrics are divided by the record's n90s. Missing values and zero/null
// normalizers substitute 0 instead of excluding the record; low-minutes
// records therefore bias low, which is the replicated source behavior.
func metricSample(r *domain.PlayerRecord, metric string) float64 {
	v := r.MetricValue(metric)
	if domain.IsRateMetric(metric) {
		if v == nil {
			return 0
		}
		return *v
	}
	if v == nil || r.N90s == nil || *r.N90s <= 0 {
		return 0
	}
	return *v / *r.N90s
}

// blendRecords collapses multi-season records into one hybrid record:
// every numeric metric (and n90s) becomes the null-aware mean across the
// matched records, while the biographical fields (name, pos, squad, age)
// are pinned to the most recent season's snapshot.
func blendRecords(records []*domain.PlayerRecord) *domain.PlayerRecord {
	if len(records) == 1 {
		blendedCopy := *records[0]
		return &blendedCopy
	}

	// Season strings are "YYYY-YYYY", so lexical order is chronological.
	sorted := make([]*domain.PlayerRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Season > sorted[j].Season
	})
	latest := sorted[0]

	blended := domain.PlayerRecord{
		ID:     latest.ID,
		Name:   latest.Name,
		Nation: latest.Nation,
		Pos:    latest.Pos,
		Squad:  latest.Squad,
		Comp:   latest.Comp,
		Season: latest.Season,
		Age:    latest.Age,
	}

	for _, metric := range domain.MetricColumns {
		blended.SetMetric(metric, meanMetric(records, metric))
	}

	// n90s is numeric, not biographical: blend it too.
	blended.N90s = meanOf(records, func(r *domain.PlayerRecord) *float64 { return r.N90s })

	return &blended
}

// meanMetric computes the null-aware mean of a metric across records.
// Returns nil when every record is missing the metric.
func meanMetric(records []*domain.PlayerRecord, metric string) *float64 {
	return meanOf(records, func(r *domain.PlayerRecord) *float64 { return r.MetricValue(metric) })
}

func meanOf(records []*domain.PlayerRecord, get func(*domain.PlayerRecord) *float64) *float64 {
	sum := 0.0
	count := 0
	for _, r := range records {
		if v := get(r); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := sum / float64(count)
	return &mean
}

// eliteScore computes the age-and-performance-gated premium or discount
// added on top of the base valuation. Three mutually exclusive brackets,
// evaluated in order; all score gates are strict.
func eliteScore(age, pScore float64) float64 {
	switch {
	case age <= 23 && pScore > 7.5:
		// Elite prospect: younger and better compounds hard.
		return (24.0 - age) * pScore * 3.0
	case age > 23 && age <= 31 && pScore > 8.0:
		// Prime: premium decays linearly toward the veteran boundary.
		return pScore * 5.0 * ((32.0 - age) / 9.0)
	case age >= 32 && pScore > 7.0:
		// Veteran: hyperbolic decay past 32.
		return pScore * 2.0 * (1.0 / (age - 30.0))
	}
	return 0.0
}

// round1 and round2 round to 1 and 2 decimal places.
func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
