package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"telemetry-analytics/internal/aggregators"
	"telemetry-analytics/internal/errorsummary"
	internalhttp "telemetry-analytics/internal/http"
	"telemetry-analytics/internal/ingestors"
	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/reports"
	"telemetry-analytics/internal/retention"
	"telemetry-analytics/internal/schedulers"
	"telemetry-analytics/internal/shared/configs"
	"telemetry-analytics/internal/shared/docstores"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/stores"
	"telemetry-analytics/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	docStore           docstores.DocStore
	errorEventConsumer streams.ErrorEventConsumer
	scheduler          *schedulers.Scheduler
	backgroundCtx      context.Context
	backgroundCancel   context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "telemetry-analytics").
		Logger()

	// Initialize document store
	docStore, err := docstores.New(docstores.Config{
		Path:     config.Storage.Path,
		InMemory: config.Storage.InMemory,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document store: %w", err)
	}

	// Initialize stores
	rawMetricStore := stores.NewRawMetricStore(docStore)
	rawEventStore := stores.NewRawEventStore(docStore)
	sessionStore := stores.NewSessionStore(docStore)
	businessMetricStore := stores.NewBusinessMetricStore(docStore)
	perfRollupStore := stores.NewRollupStore(docStore, stores.CollPerfRollups)
	eventRollupStore := stores.NewRollupStore(docStore, stores.CollEventRollups)
	perfReportStore := stores.NewPerformanceReportStore(docStore)
	analyticsReportStore := stores.NewAnalyticsReportStore(docStore)
	breachStore := stores.NewBreachStore(docStore)
	alertStore := stores.NewAlertStore(docStore)
	errorReportStore := stores.NewErrorReportStore(docStore)
	errorSummaryStore := stores.NewErrorSummaryStore(docStore)

	// Initialize ingestion services
	thresholdChecker := ingestors.NewThresholdChecker(thresholdRules(config.Thresholds), breachStore)
	metricIngestionService := ingestors.NewMetricIngestionService(rawMetricStore, thresholdChecker)
	eventIngestionService := ingestors.NewEventIngestionService(rawEventStore, businessMetricStore, sessionStore)

	// Initialize error summary pipeline
	errorQueue := streams.NewPartitionedQueue[models.ErrorRecord]()
	errorEventProducer := streams.NewErrorEventProducer(errorQueue)
	errorIngestionService := ingestors.NewErrorIngestionService(severityRules(config.ErrorSeverity), errorReportStore, errorEventProducer)
	summaryService := errorsummary.NewSummaryService(errorSummaryStore, alertStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	errorEventConsumer := streams.NewErrorEventConsumer(errorQueue, summaryService, consumerLogger)

	// Initialize retention sweeper
	sweeper := retention.NewSweeper(config.Retention.SweepLimit,
		retention.Target{Collection: stores.CollRawMetrics, MaxAge: days(config.Retention.RawMetricDays), Delete: rawMetricStore.DeleteOlderThan},
		retention.Target{Collection: stores.CollRawEvents, MaxAge: days(config.Retention.RawEventDays), Delete: rawEventStore.DeleteOlderThan},
		retention.Target{Collection: stores.CollSessions, MaxAge: days(config.Retention.SessionDays), Delete: sessionStore.DeleteOlderThan},
		retention.Target{Collection: stores.CollBusinessMetrics, MaxAge: days(config.Retention.BusinessMetricDays), Delete: businessMetricStore.DeleteOlderThan},
		retention.Target{Collection: stores.CollErrorReports, MaxAge: days(config.Retention.ErrorReportDays), Delete: errorReportStore.DeleteOlderThan},
		retention.Target{Collection: stores.CollPerfRollups, MaxAge: days(config.Retention.RollupDays), Delete: perfRollupStore.DeleteOlderThan},
		retention.Target{Collection: stores.CollEventRollups, MaxAge: days(config.Retention.RollupDays), Delete: eventRollupStore.DeleteOlderThan},
		retention.Target{Collection: stores.CollPerfReports, MaxAge: days(config.Retention.ReportDays), Delete: perfReportStore.DeleteOlderThan},
		retention.Target{Collection: stores.CollAnalyticsReports, MaxAge: days(config.Retention.ReportDays), Delete: analyticsReportStore.DeleteOlderThan},
	)

	// Initialize aggregation services. Each run aggregates the window
	// that just closed, so the window size equals the run interval.
	metricInterval := time.Duration(config.Aggregation.MetricIntervalMinutes) * time.Minute
	eventInterval := time.Duration(config.Aggregation.EventIntervalMinutes) * time.Minute
	metricAggregationService := aggregators.NewAggregationService(
		aggregators.NewMetricRecordSource(rawMetricStore), perfRollupStore, sweeper, metricInterval, models.PeriodHour)
	eventAggregationService := aggregators.NewAggregationService(
		aggregators.NewEventRecordSource(rawEventStore), eventRollupStore, nil, eventInterval, models.PeriodDay)

	// Initialize report services
	performanceReportService := reports.NewPerformanceReportService(
		perfRollupStore, perfReportStore, alertStore,
		time.Hour, config.Reports.DegradationThresholdPct, config.Reports.TopSlowest)
	analyticsReportService := reports.NewAnalyticsReportService(
		eventRollupStore, analyticsReportStore, businessMetricStore, sessionStore, rawEventStore,
		24*time.Hour)

	// Initialize scheduler
	location, err := time.LoadLocation(config.Reports.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load report timezone: %w", err)
	}
	schedulerLogger := appLogger.With().Str(loggers.FieldComponent, "scheduler").Logger()
	scheduler := schedulers.NewScheduler(schedulerLogger)
	scheduler.AddInterval(schedulers.NewJobFunc("metric_aggregation", func(ctx context.Context) error {
		return metricAggregationService.Aggregate(ctx, time.Now().UTC())
	}), metricInterval)
	scheduler.AddInterval(schedulers.NewJobFunc("event_aggregation", func(ctx context.Context) error {
		return eventAggregationService.Aggregate(ctx, time.Now().UTC())
	}), eventInterval)
	scheduler.AddInterval(schedulers.NewJobFunc("performance_report", func(ctx context.Context) error {
		return performanceReportService.Generate(ctx, time.Now().UTC())
	}), time.Hour)
	scheduler.AddDaily(schedulers.NewJobFunc("analytics_report", func(ctx context.Context) error {
		return analyticsReportService.Generate(ctx, time.Now().UTC())
	}), config.Reports.DailyHour, location)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(
		metricIngestionService,
		eventIngestionService,
		errorIngestionService,
		config.Server.DebugErrors,
		httpLogger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:             config,
		appLogger:          appLogger,
		server:             server,
		docStore:           docStore,
		errorEventConsumer: errorEventConsumer,
		scheduler:          scheduler,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting telemetry-analytics service on port %d (log_level=%s, storage_path=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Storage.Path)

	// start background consumers and scheduled jobs
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.errorEventConsumer.Start(app.backgroundCtx)
	app.scheduler.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background consumers and scheduled jobs
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background workers cancelled")
	}

	// 3) Wait for background workers to finish
	app.errorEventConsumer.Stop()
	app.scheduler.Stop()
	app.appLogger.Info().Msg("Background workers stopped")

	// 4) Close the document store after all writers have stopped
	if err := app.docStore.Close(); err != nil {
		return fmt.Errorf("document store close failed: %w", err)
	}
	app.appLogger.Info().Msg("Document store closed")

	return nil
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func thresholdRules(rules []configs.ThresholdRule) []ingestors.ThresholdRule {
	out := make([]ingestors.ThresholdRule, 0, len(rules))
	for _, rule := range rules {
		out = append(out, ingestors.ThresholdRule{
			Pattern:     rule.Pattern,
			ThresholdMs: rule.ThresholdMs,
		})
	}
	return out
}

func severityRules(rules []configs.SeverityRule) []ingestors.SeverityRule {
	out := make([]ingestors.SeverityRule, 0, len(rules))
	for _, rule := range rules {
		out = append(out, ingestors.SeverityRule{
			Severity: models.Severity(rule.Severity),
			Keywords: rule.Keywords,
		})
	}
	return out
}
