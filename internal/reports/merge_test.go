package reports_test

import (
	"testing"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRollups_WeightedAverage(t *testing.T) {
	t.Parallel()

	rollups := []*models.Rollup{
		{Name: "api_call", Count: 10, Average: 100, Min: 50, Max: 150, P90: 140},
		{Name: "api_call", Count: 30, Average: 200, Min: 80, Max: 400, P90: 350},
	}

	merged := reports.MergeRollups(rollups)
	require.Len(t, merged, 1)

	metric := merged["api_call"]
	assert.Equal(t, int64(40), metric.Count)
	// (100*10 + 200*30) / 40 = 175
	assert.Equal(t, 175.0, metric.Average)
	assert.Equal(t, 50.0, metric.Min)
	assert.Equal(t, 400.0, metric.Max)
}

func TestMergeRollups_PercentilesAreMedianOfRollups(t *testing.T) {
	t.Parallel()

	rollups := []*models.Rollup{
		{Name: "api_call", Count: 1, P90: 100},
		{Name: "api_call", Count: 1, P90: 300},
		{Name: "api_call", Count: 1, P90: 200},
	}

	merged := reports.MergeRollups(rollups)

	assert.Equal(t, 200.0, merged["api_call"].P90)
}

func TestMergeRollups_SeparateNames(t *testing.T) {
	t.Parallel()

	rollups := []*models.Rollup{
		{Name: "api_call", Count: 5, Average: 100},
		{Name: "screen_load", Count: 3, Average: 40},
	}

	merged := reports.MergeRollups(rollups)
	require.Len(t, merged, 2)
	assert.Equal(t, int64(5), merged["api_call"].Count)
	assert.Equal(t, int64(3), merged["screen_load"].Count)
}

func TestMergeRollups_Empty(t *testing.T) {
	t.Parallel()

	merged := reports.MergeRollups(nil)
	assert.Empty(t, merged)
}

func TestMergePlatforms(t *testing.T) {
	t.Parallel()

	rollups := []*models.Rollup{
		{Name: "a", Platforms: map[string]int64{"ios": 3, "android": 1}},
		{Name: "b", Platforms: map[string]int64{"ios": 2, "web": 5}},
	}

	platforms := reports.MergePlatforms(rollups)

	assert.Equal(t, map[string]int64{"ios": 5, "android": 1, "web": 5}, platforms)
}

func TestTopByP90(t *testing.T) {
	t.Parallel()

	merged := map[string]models.ReportMetric{
		"fast":   {Name: "fast", P90: 10},
		"slow":   {Name: "slow", P90: 500},
		"medium": {Name: "medium", P90: 100},
	}

	top := reports.TopByP90(merged, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "slow", top[0].Name)
	assert.Equal(t, "medium", top[1].Name)
}

func TestTopByP90_TieBreaksByName(t *testing.T) {
	t.Parallel()

	merged := map[string]models.ReportMetric{
		"bravo": {Name: "bravo", P90: 100},
		"alpha": {Name: "alpha", P90: 100},
	}

	top := reports.TopByP90(merged, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "alpha", top[0].Name)
	assert.Equal(t, "bravo", top[1].Name)
}
