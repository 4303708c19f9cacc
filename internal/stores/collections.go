package stores

// Logical collection names inside the document store.
const (
	CollRawMetrics      = "raw-metrics"
	CollRawEvents       = "raw-events"
	CollSessions        = "sessions"
	CollBusinessMetrics = "business-metrics"

	CollPerfRollups  = "perf-rollups"
	CollEventRollups = "event-rollups"

	CollPerfReports      = "performance-reports"
	CollAnalyticsReports = "analytics-reports"

	collThresholdBreaches = "threshold-breaches"
	collDegradationAlerts = "degradation-alerts"
	collCriticalAlerts    = "critical-alerts"

	CollErrorReports   = "error-reports"
	collErrorSummaries = "error-summaries"
)
