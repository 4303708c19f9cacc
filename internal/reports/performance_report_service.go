package reports

import (
	"context"
	"errors"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/ulid"
	"telemetry-analytics/internal/stores"
)

// PerformanceReportService generates the hourly cross-metric report
// from the hour's rollups and compares it against the previous report
// to flag regressions.
//
//go:generate mockgen -source=performance_report_service.go -destination=./mocks/performance_report_service_mock.go -package=mocks
type PerformanceReportService interface {
	// Generate builds and persists the report for [now-window, now).
	Generate(ctx context.Context, now time.Time) error
}

type performanceReportService struct {
	rollupStore             stores.RollupStore
	reportStore             stores.PerformanceReportStore
	alertStore              stores.AlertStore
	windowSize              time.Duration
	degradationThresholdPct float64
	topSlowest              int
}

func NewPerformanceReportService(rollupStore stores.RollupStore, reportStore stores.PerformanceReportStore, alertStore stores.AlertStore, windowSize time.Duration, degradationThresholdPct float64, topSlowest int) PerformanceReportService {
	return &performanceReportService{
		rollupStore:             rollupStore,
		reportStore:             reportStore,
		alertStore:              alertStore,
		windowSize:              windowSize,
		degradationThresholdPct: degradationThresholdPct,
		topSlowest:              topSlowest,
	}
}

func (s *performanceReportService) Generate(ctx context.Context, now time.Time) error {
	logger := loggers.Ctx(ctx)

	endTime := now.UTC()
	startTime := endTime.Add(-s.windowSize)

	rollups, err := s.rollupStore.QueryWindow(ctx, startTime, endTime)
	if err != nil {
		return errInternalRollupFetchFailed(err)
	}
	if len(rollups) == 0 {
		logger.Debug().
			Time(loggers.FieldWindowStart, startTime).
			Time(loggers.FieldWindowEnd, endTime).
			Msg("no rollups in report window, skipping")
		return nil
	}

	merged := MergeRollups(rollups)
	report := &models.PerformanceReport{
		ID:          ulid.NewULID(),
		StartTime:   startTime,
		EndTime:     endTime,
		GeneratedAt: endTime,
		Metrics:     merged,
		TopSlowest:  TopByP90(merged, s.topSlowest),
		Platforms:   MergePlatforms(rollups),
	}

	if err := s.reportStore.Append(ctx, report); err != nil {
		return errInternalReportStoreFailed(err)
	}
	metricReportsGeneratedTotal.WithLabelValues(reportPerformance).Inc()

	// Degradation comparison is a best-effort enrichment: the base report
	// is already committed, so failures here are logged and dropped.
	if err := s.flagDegradations(ctx, report); err != nil {
		logger.Error().Err(err).Msg("degradation comparison failed")
	}

	logger.Info().
		Time(loggers.FieldWindowStart, startTime).
		Time(loggers.FieldWindowEnd, endTime).
		Int("metrics", len(merged)).
		Msg("performance report generated")
	return nil
}

// flagDegradations compares each metric's p90 against the immediately
// preceding report and persists an alert when the regression exceeds
// the configured percentage. The comparison is strict: a degradation of
// exactly the threshold does not fire.
func (s *performanceReportService) flagDegradations(ctx context.Context, report *models.PerformanceReport) error {
	previous, err := s.reportStore.LatestBefore(ctx, report.StartTime)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return nil
		}
		return err
	}

	for name, current := range report.Metrics {
		prev, ok := previous.Metrics[name]
		if !ok || prev.P90 <= 0 {
			continue
		}
		degradationPct := (current.P90 - prev.P90) / prev.P90 * 100
		if degradationPct <= s.degradationThresholdPct {
			continue
		}

		alert := &models.DegradationAlert{
			ID:             ulid.NewULID(),
			Metric:         name,
			PreviousP90:    prev.P90,
			CurrentP90:     current.P90,
			DegradationPct: degradationPct,
			Timestamp:      report.EndTime,
		}
		if err := s.alertStore.AppendDegradation(ctx, alert); err != nil {
			return err
		}
		metricDegradationAlertsTotal.Inc()
		loggers.Ctx(ctx).Warn().
			Str(loggers.FieldMetricName, name).
			Float64("previous_p90", prev.P90).
			Float64("current_p90", current.P90).
			Float64("degradation_pct", degradationPct).
			Msg("performance degradation detected")
	}
	return nil
}
