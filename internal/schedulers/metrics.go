package schedulers

import (
	"telemetry-analytics/internal/shared/metrics"
)

var metricJobRunsTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubScheduler,
		Name:      "job_runs_total",
	},
	[]string{"job", metrics.FieldErrorCode},
)
