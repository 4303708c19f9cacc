package aggregators_test

import (
	"testing"

	"telemetry-analytics/internal/aggregators"

	"github.com/stretchr/testify/assert"
)

func TestPercentile_NearestRank(t *testing.T) {
	t.Parallel()

	sorted := []float64{10, 20, 30, 40, 50}

	tests := []struct {
		name     string
		p        float64
		expected float64
	}{
		{name: "p50 of five", p: 0.50, expected: 30},
		{name: "p90 of five", p: 0.90, expected: 50},
		{name: "p95 of five", p: 0.95, expected: 50},
		{name: "p99 of five", p: 0.99, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregators.Percentile(sorted, tt.p))
		})
	}
}

func TestPercentile_SingleValue(t *testing.T) {
	t.Parallel()

	sorted := []float64{42}

	assert.Equal(t, 42.0, aggregators.Percentile(sorted, 0.50))
	assert.Equal(t, 42.0, aggregators.Percentile(sorted, 0.99))
}

func TestPercentile_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, aggregators.Percentile(nil, 0.90))
}

func TestPercentile_TenValues(t *testing.T) {
	t.Parallel()

	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	// ceil(0.90*10)-1 = 8
	assert.Equal(t, 9.0, aggregators.Percentile(sorted, 0.90))
	// ceil(0.95*10)-1 = 9
	assert.Equal(t, 10.0, aggregators.Percentile(sorted, 0.95))
	// ceil(0.50*10)-1 = 4
	assert.Equal(t, 5.0, aggregators.Percentile(sorted, 0.50))
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	summary := aggregators.Summarize([]float64{300, 100, 200})

	assert.Equal(t, int64(3), summary.Count)
	assert.Equal(t, 200.0, summary.Average)
	assert.Equal(t, 100.0, summary.Min)
	assert.Equal(t, 300.0, summary.Max)
	assert.Equal(t, 200.0, summary.P50)
	assert.Equal(t, 300.0, summary.P90)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	summary := aggregators.Summarize(nil)

	assert.Equal(t, int64(0), summary.Count)
	assert.Equal(t, 0.0, summary.Average)
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	values := []float64{3, 1, 2}
	aggregators.Summarize(values)

	assert.Equal(t, []float64{3, 1, 2}, values)
}
