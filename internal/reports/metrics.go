package reports

import (
	"telemetry-analytics/internal/shared/metrics"

	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	reportPerformance = "performance"
	reportAnalytics   = "analytics"
)

var (
	metricReportsGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporting,
			Name:      "reports_generated_total",
		},
		[]string{"report"},
	)

	metricDegradationAlertsTotal = promauto.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporting,
			Name:      "degradation_alerts_total",
		},
	)
)
