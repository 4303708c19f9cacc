package reports_test

import (
	"context"
	"testing"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/reports"
	"telemetry-analytics/internal/shared/svcerrors"
	"telemetry-analytics/internal/stores"
	storemocks "telemetry-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPerformanceReportFixture(t *testing.T) (*storemocks.MockRollupStore, *storemocks.MockPerformanceReportStore, *storemocks.MockAlertStore, reports.PerformanceReportService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	rollupStore := storemocks.NewMockRollupStore(ctrl)
	reportStore := storemocks.NewMockPerformanceReportStore(ctrl)
	alertStore := storemocks.NewMockAlertStore(ctrl)
	service := reports.NewPerformanceReportService(rollupStore, reportStore, alertStore, time.Hour, 20, 3)
	return rollupStore, reportStore, alertStore, service
}

func TestGeneratePerformanceReport(t *testing.T) {
	t.Parallel()

	rollupStore, reportStore, _, service := newPerformanceReportFixture(t)

	now := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	windowStart := now.Add(-time.Hour)

	rollupStore.EXPECT().
		QueryWindow(gomock.Any(), windowStart, now).
		Return([]*models.Rollup{
			{Name: "api_call", Count: 10, Average: 100, Min: 20, Max: 300, P90: 250},
			{Name: "screen_load", Count: 4, Average: 40, Min: 10, Max: 90, P90: 80},
		}, nil)

	var written *models.PerformanceReport
	reportStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.PerformanceReport) error {
			written = report
			return nil
		})
	reportStore.EXPECT().
		LatestBefore(gomock.Any(), windowStart).
		Return(nil, stores.ErrReportNotFound)

	err := service.Generate(context.Background(), now)
	require.NoError(t, err)

	require.NotNil(t, written)
	assert.NotEmpty(t, written.ID)
	assert.Equal(t, windowStart, written.StartTime)
	assert.Equal(t, now, written.EndTime)
	assert.Len(t, written.Metrics, 2)
	require.Len(t, written.TopSlowest, 2)
	assert.Equal(t, "api_call", written.TopSlowest[0].Name)
}

func TestGeneratePerformanceReport_NoRollupsSkips(t *testing.T) {
	t.Parallel()

	rollupStore, _, _, service := newPerformanceReportFixture(t)

	rollupStore.EXPECT().
		QueryWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	err := service.Generate(context.Background(), time.Now())
	require.NoError(t, err)
}

func TestGeneratePerformanceReport_StoreErrorSurfaces(t *testing.T) {
	t.Parallel()

	rollupStore, reportStore, _, service := newPerformanceReportFixture(t)

	rollupStore.EXPECT().
		QueryWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Rollup{{Name: "api_call", Count: 1}}, nil)
	reportStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	err := service.Generate(context.Background(), time.Now())
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_9001", svcErr.Code)
}

func TestGeneratePerformanceReport_DegradationAlertFires(t *testing.T) {
	t.Parallel()

	rollupStore, reportStore, alertStore, service := newPerformanceReportFixture(t)

	now := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	windowStart := now.Add(-time.Hour)

	rollupStore.EXPECT().
		QueryWindow(gomock.Any(), windowStart, now).
		Return([]*models.Rollup{{Name: "api_call", Count: 5, P90: 125}}, nil)
	reportStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)
	reportStore.EXPECT().
		LatestBefore(gomock.Any(), windowStart).
		Return(&models.PerformanceReport{
			Metrics: map[string]models.ReportMetric{
				"api_call": {Name: "api_call", P90: 100},
			},
		}, nil)

	var alert *models.DegradationAlert
	alertStore.EXPECT().
		AppendDegradation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.DegradationAlert) error {
			alert = a
			return nil
		})

	err := service.Generate(context.Background(), now)
	require.NoError(t, err)

	require.NotNil(t, alert)
	assert.Equal(t, "api_call", alert.Metric)
	assert.Equal(t, 100.0, alert.PreviousP90)
	assert.Equal(t, 125.0, alert.CurrentP90)
	assert.InDelta(t, 25.0, alert.DegradationPct, 1e-9)
}

func TestGeneratePerformanceReport_ExactThresholdDoesNotFire(t *testing.T) {
	t.Parallel()

	rollupStore, reportStore, _, service := newPerformanceReportFixture(t)

	now := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	windowStart := now.Add(-time.Hour)

	// 100 -> 120 is exactly 20%; the comparison is strict, so no alert.
	rollupStore.EXPECT().
		QueryWindow(gomock.Any(), windowStart, now).
		Return([]*models.Rollup{{Name: "api_call", Count: 5, P90: 120}}, nil)
	reportStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)
	reportStore.EXPECT().
		LatestBefore(gomock.Any(), windowStart).
		Return(&models.PerformanceReport{
			Metrics: map[string]models.ReportMetric{
				"api_call": {Name: "api_call", P90: 100},
			},
		}, nil)

	err := service.Generate(context.Background(), now)
	require.NoError(t, err)
}

func TestGeneratePerformanceReport_ZeroPreviousP90Skipped(t *testing.T) {
	t.Parallel()

	rollupStore, reportStore, _, service := newPerformanceReportFixture(t)

	now := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	windowStart := now.Add(-time.Hour)

	rollupStore.EXPECT().
		QueryWindow(gomock.Any(), windowStart, now).
		Return([]*models.Rollup{{Name: "api_call", Count: 5, P90: 500}}, nil)
	reportStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)
	reportStore.EXPECT().
		LatestBefore(gomock.Any(), windowStart).
		Return(&models.PerformanceReport{
			Metrics: map[string]models.ReportMetric{
				"api_call": {Name: "api_call", P90: 0},
			},
		}, nil)

	err := service.Generate(context.Background(), now)
	require.NoError(t, err)
}

func TestGeneratePerformanceReport_DegradationFailureDoesNotFailReport(t *testing.T) {
	t.Parallel()

	rollupStore, reportStore, _, service := newPerformanceReportFixture(t)

	rollupStore.EXPECT().
		QueryWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Rollup{{Name: "api_call", Count: 1, P90: 100}}, nil)
	reportStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)
	reportStore.EXPECT().
		LatestBefore(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	err := service.Generate(context.Background(), time.Now())
	require.NoError(t, err)
}
