package errorsummary

import (
	"telemetry-analytics/internal/shared/metrics"

	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricSummariesAppliedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubErrorSum,
			Name:      "summaries_applied_total",
		},
		[]string{"severity"},
	)

	metricSummariesSkippedTotal = promauto.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubErrorSum,
			Name:      "summaries_replay_skipped_total",
		},
	)
)
