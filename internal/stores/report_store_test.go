package stores

import (
	"context"
	"testing"
	"time"

	"telemetry-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceReportStore_LatestBefore(t *testing.T) {
	t.Parallel()

	store := NewPerformanceReportStore(newTestDocStore(t))
	ctx := context.Background()
	firstHour := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	secondHour := firstHour.Add(time.Hour)

	older := &models.PerformanceReport{
		ID:        "r1",
		StartTime: firstHour,
		EndTime:   secondHour,
		Metrics: map[string]models.ReportMetric{
			"api_call": {Name: "api_call", Count: 10, P90: 400},
		},
	}
	newer := &models.PerformanceReport{
		ID:        "r2",
		StartTime: secondHour,
		EndTime:   secondHour.Add(time.Hour),
		Metrics: map[string]models.ReportMetric{
			"api_call": {Name: "api_call", Count: 12, P90: 500},
		},
	}
	require.NoError(t, store.Append(ctx, older))
	require.NoError(t, store.Append(ctx, newer))

	// Generating the report for the window starting at secondHour must
	// see only the preceding report.
	report, err := store.LatestBefore(ctx, secondHour)
	require.NoError(t, err)
	assert.Equal(t, "r1", report.ID)
	assert.Equal(t, 400.0, report.Metrics["api_call"].P90)

	report, err = store.LatestBefore(ctx, secondHour.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "r2", report.ID)
}

func TestPerformanceReportStore_LatestBefore_Empty(t *testing.T) {
	t.Parallel()

	store := NewPerformanceReportStore(newTestDocStore(t))

	report, err := store.LatestBefore(context.Background(), time.Now().UTC())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestAnalyticsReportStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := NewAnalyticsReportStore(newTestDocStore(t))
	ctx := context.Background()
	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	report := &models.AnalyticsReport{
		ID:        "a1",
		StartTime: dayStart,
		EndTime:   dayStart.Add(24 * time.Hour),
		Events: map[string]models.ReportMetric{
			"sign_up": {Name: "sign_up", Count: 42},
		},
		Funnel: &models.ConversionFunnel{
			EventCounts:       map[string]int64{"sign_up": 42, "family_created": 21},
			SignUpToFamilyPct: 50,
		},
		Engagement: &models.EngagementStats{
			ActiveUsers:              100,
			SessionsPerUser:          1.5,
			WeekOverWeekRetentionPct: 75,
		},
	}
	require.NoError(t, store.Append(ctx, report))

	got, err := store.LatestBefore(ctx, dayStart.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, int64(42), got.Events["sign_up"].Count)
	require.NotNil(t, got.Funnel)
	assert.Equal(t, 50.0, got.Funnel.SignUpToFamilyPct)
	require.NotNil(t, got.Engagement)
	assert.Equal(t, int64(100), got.Engagement.ActiveUsers)
}
