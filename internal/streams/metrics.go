package streams

import (
	"telemetry-analytics/internal/shared/metrics"
)

var (
	streamErrorEvents              = "error_events"
	metricErrorEventsProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "error_events_published_total",
		},
		[]string{"stream_id"},
	)

	metricErrorEventsConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "error_events_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
