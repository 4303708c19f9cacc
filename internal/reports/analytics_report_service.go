package reports

import (
	"context"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/ulid"
	"telemetry-analytics/internal/stores"
)

// AnalyticsReportService generates the daily cross-event report:
// merged event rollups plus two best-effort enrichments, the conversion
// funnel (from the denormalized business-metrics collection) and
// engagement statistics (from sessions and raw events). Enrichment
// failures are logged and leave the corresponding report field nil;
// they never block the base report.
//
//go:generate mockgen -source=analytics_report_service.go -destination=./mocks/analytics_report_service_mock.go -package=mocks
type AnalyticsReportService interface {
	// Generate builds and persists the report for [now-window, now).
	Generate(ctx context.Context, now time.Time) error
}

type analyticsReportService struct {
	rollupStore         stores.RollupStore
	reportStore         stores.AnalyticsReportStore
	businessMetricStore stores.BusinessMetricStore
	sessionStore        stores.SessionStore
	rawEventStore       stores.RawEventStore
	windowSize          time.Duration
}

func NewAnalyticsReportService(rollupStore stores.RollupStore, reportStore stores.AnalyticsReportStore, businessMetricStore stores.BusinessMetricStore, sessionStore stores.SessionStore, rawEventStore stores.RawEventStore, windowSize time.Duration) AnalyticsReportService {
	return &analyticsReportService{
		rollupStore:         rollupStore,
		reportStore:         reportStore,
		businessMetricStore: businessMetricStore,
		sessionStore:        sessionStore,
		rawEventStore:       rawEventStore,
		windowSize:          windowSize,
	}
}

func (s *analyticsReportService) Generate(ctx context.Context, now time.Time) error {
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
			Msg("no event rollups in report window, skipping")
		return nil
	}

	report := &models.AnalyticsReport{
		ID:          ulid.NewULID(),
		StartTime:   startTime,
		EndTime:     endTime,
		GeneratedAt: endTime,
		Events:      MergeRollups(rollups),
		Platforms:   MergePlatforms(rollups),
	}

	// Enrichments are computed before the single report write, but each is
	// individually best-effort: a failure leaves its field nil and the base
	// report still commits.
	funnel, err := s.computeFunnel(ctx, startTime, endTime)
	if err != nil {
		logger.Error().Err(err).Msg("conversion funnel computation failed")
	} else {
		report.Funnel = funnel
	}

	engagement, err := s.computeEngagement(ctx, startTime, endTime)
	if err != nil {
		logger.Error().Err(err).Msg("engagement computation failed")
	} else {
		report.Engagement = engagement
	}

	if err := s.reportStore.Append(ctx, report); err != nil {
		return errInternalReportStoreFailed(err)
	}
	metricReportsGeneratedTotal.WithLabelValues(reportAnalytics).Inc()

	logger.Info().
		Time(loggers.FieldWindowStart, startTime).
		Time(loggers.FieldWindowEnd, endTime).
		Int("events", len(report.Events)).
		Msg("analytics report generated")
	return nil
}

func (s *analyticsReportService) computeFunnel(ctx context.Context, start, end time.Time) (*models.ConversionFunnel, error) {
	counts, err := s.businessMetricStore.CountByEvent(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &models.ConversionFunnel{
		EventCounts:               counts,
		SignUpToFamilyPct:         ratioPct(counts[models.EventFamilyCreated], counts[models.EventSignUp]),
		FamilyToTaskPct:           ratioPct(counts[models.EventTaskCompleted], counts[models.EventFamilyCreated]),
		SignUpToPurchasePct:       ratioPct(counts[models.EventPurchaseCompleted], counts[models.EventSignUp]),
		PurchaseToSubscriptionPct: ratioPct(counts[models.EventSubscriptionStarted], counts[models.EventPurchaseCompleted]),
		SubscriptionChurnPct:      ratioPct(counts[models.EventSubscriptionCancelled], counts[models.EventSubscriptionStarted]),
	}, nil
}

func (s *analyticsReportService) computeEngagement(ctx context.Context, start, end time.Time) (*models.EngagementStats, error) {
	sessions, err := s.sessionStore.QueryWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}

	activeUsers := make(map[string]struct{})
	eventsInWindow, err := s.rawEventStore.QueryWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for _, event := range eventsInWindow {
		if event.UserID != "" {
			activeUsers[event.UserID] = struct{}{}
		}
	}

	stats := &models.EngagementStats{
		ActiveUsers: int64(len(activeUsers)),
	}
	if len(activeUsers) > 0 {
		stats.SessionsPerUser = float64(len(sessions)) / float64(len(activeUsers))
	}
	if len(sessions) > 0 {
		var totalDuration float64
		for _, session := range sessions {
			totalDuration += session.DurationMs
		}
		stats.AvgSessionDurationMs = totalDuration / float64(len(sessions))
	}

	retention, err := s.weekOverWeekRetention(ctx, end)
	if err != nil {
		return nil, err
	}
	stats.WeekOverWeekRetentionPct = retention

	return stats, nil
}

// weekOverWeekRetention computes |usersThisWeek ∩ usersPrevWeek| /
// |usersPrevWeek|, as a percentage. Zero when the previous week had no
// active users.
func (s *analyticsReportService) weekOverWeekRetention(ctx context.Context, end time.Time) (float64, error) {
	week := 7 * 24 * time.Hour

	thisWeek, err := s.uniqueUsers(ctx, end.Add(-week), end)
	if err != nil {
		return 0, err
	}
	prevWeek, err := s.uniqueUsers(ctx, end.Add(-2*week), end.Add(-week))
	if err != nil {
		return 0, err
	}
	if len(prevWeek) == 0 {
		return 0, nil
	}

	var retained int64
	for user := range thisWeek {
		if _, ok := prevWeek[user]; ok {
			retained++
		}
	}
	return float64(retained) / float64(len(prevWeek)) * 100, nil
}

func (s *analyticsReportService) uniqueUsers(ctx context.Context, start, end time.Time) (map[string]struct{}, error) {
	records, err := s.rawEventStore.QueryWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	users := make(map[string]struct{})
	for _, record := range records {
		if record.UserID != "" {
			users[record.UserID] = struct{}{}
		}
	}
	return users, nil
}

func ratioPct(numerator, denominator int64) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}
