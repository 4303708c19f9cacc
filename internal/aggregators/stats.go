package aggregators

import (
	"math"
	"sort"
)

// Summary holds the statistics computed for one group of values.
type Summary struct {
	Count   int64
	Average float64
	Min     float64
	Max     float64
	P50     float64
	P90     float64
	P95     float64
	P99     float64
}

// Summarize computes count, average, min, max and the standard
// percentiles for a group of values. The input is not mutated.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	return Summary{
		Count:   int64(len(sorted)),
		Average: sum / float64(len(sorted)),
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		P50:     Percentile(sorted, 0.50),
		P90:     Percentile(sorted, 0.90),
		P95:     Percentile(sorted, 0.95),
		P99:     Percentile(sorted, 0.99),
	}
}

// Percentile returns the p-th percentile of a sequence already sorted
// ascending, using the nearest-rank method:
//
//	index = ceil(p*n) - 1, clamped to [0, n-1]
//
// No interpolation is performed; any reimplementation must keep this
// exact tie-break so percentiles stay bit-identical across components.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	index := int(math.Ceil(p*float64(n))) - 1
	if index < 0 {
		index = 0
	}
	if index > n-1 {
		index = n - 1
	}
	return sorted[index]
}
