package ingestors

import (
	"telemetry-analytics/internal/shared/metrics"
)

const (
	pipelineMetrics = "metrics"
	pipelineEvents  = "events"
	pipelineErrors  = "errors"
)

var (
	metricRecordsIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "records_ingested_total",
		},
		[]string{"pipeline", metrics.FieldErrorCode},
	)

	metricThresholdBreachesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "threshold_breaches_total",
		},
		[]string{"pattern"},
	)
)
