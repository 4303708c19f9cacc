package aggregators

import (
	"telemetry-analytics/internal/shared/metrics"
)

// metricRollupsCreatedTotal counts rollup documents written, labelled by
// rollup period and the low-cardinality time bucket of the window start
// (e.g. "hour-18"), mirroring how ingestion counters are labelled by
// error code rather than by raw metric name.
var (
	metricRollupsCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "rollups_created_total",
		},
		[]string{"period", "bucket_id"},
	)
)
