package reports

import (
	"sort"

	"telemetry-analytics/internal/aggregators"
	"telemetry-analytics/internal/models"
)

// MergeRollups combines rollups sharing the same name across the
// sub-windows of a report period into one ReportMetric per name.
//
// Averages are merged exactly by count-weighting
// (Σ(avg_i·count_i) / Σcount_i) and min/max elementwise. Percentiles are
// merged as the median of the per-rollup percentiles, an approximation
// rather than a recomputation from raw values: recomputing would
// require raw records the report generator deliberately does not read.
func MergeRollups(rollups []*models.Rollup) map[string]models.ReportMetric {
	type group struct {
		count        int64
		weightedSum  float64
		min          float64
		max          float64
		p50s         []float64
		p90s         []float64
		p95s         []float64
		p99s         []float64
	}
	groups := make(map[string]*group)

	for _, rollup := range rollups {
		g, exists := groups[rollup.Name]
		if !exists {
			g = &group{min: rollup.Min, max: rollup.Max}
			groups[rollup.Name] = g
		}
		g.count += rollup.Count
		g.weightedSum += rollup.Average * float64(rollup.Count)
		if rollup.Min < g.min {
			g.min = rollup.Min
		}
		if rollup.Max > g.max {
			g.max = rollup.Max
		}
		g.p50s = append(g.p50s, rollup.P50)
		g.p90s = append(g.p90s, rollup.P90)
		g.p95s = append(g.p95s, rollup.P95)
		g.p99s = append(g.p99s, rollup.P99)
	}

	merged := make(map[string]models.ReportMetric, len(groups))
	for name, g := range groups {
		metric := models.ReportMetric{
			Name:  name,
			Count: g.count,
			Min:   g.min,
			Max:   g.max,
			P50:   medianOf(g.p50s),
			P90:   medianOf(g.p90s),
			P95:   medianOf(g.p95s),
			P99:   medianOf(g.p99s),
		}
		if g.count > 0 {
			metric.Average = g.weightedSum / float64(g.count)
		}
		merged[name] = metric
	}
	return merged
}

// MergePlatforms sums the per-platform tallies across rollups.
func MergePlatforms(rollups []*models.Rollup) map[string]int64 {
	platforms := make(map[string]int64)
	for _, rollup := range rollups {
		for platform, count := range rollup.Platforms {
			platforms[platform] += count
		}
	}
	return platforms
}

// TopByP90 returns the n merged metrics with the highest p90, descending.
func TopByP90(merged map[string]models.ReportMetric, n int) []models.ReportMetric {
	all := make([]models.ReportMetric, 0, len(merged))
	for _, metric := range merged {
		all = append(all, metric)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].P90 != all[j].P90 {
			return all[i].P90 > all[j].P90
		}
		return all[i].Name < all[j].Name
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// medianOf uses the same nearest-rank tie-break as the aggregation
// percentile calculator, so merged percentiles stay reproducible.
func medianOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return aggregators.Percentile(sorted, 0.50)
}
