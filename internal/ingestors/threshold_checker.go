package ingestors

import (
	"context"
	"strings"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/ulid"
	"telemetry-analytics/internal/stores"
)

// ThresholdRule maps a metric-name pattern to its breach threshold.
// Rules come from configuration, not compile-time literals, so
// thresholds can be tuned per environment without redeploying.
type ThresholdRule struct {
	Pattern     string
	ThresholdMs float64
}

// ThresholdChecker compares each ingested metric value against the
// configured rule table. Matching is substring containment in table
// order: the first rule whose pattern is contained in the metric name
// wins and scanning stops, so at most one breach is recorded per value.
// A value breaches only when strictly greater than the threshold.
//
// Persisting a breach is best-effort: a failed write is logged and
// never escalated to the ingestion caller.
//
//go:generate mockgen -source=threshold_checker.go -destination=./mocks/threshold_checker_mock.go -package=mocks
type ThresholdChecker interface {
	// Check returns true when the record breached its threshold.
	Check(ctx context.Context, record *models.MetricRecord) bool
}

type thresholdChecker struct {
	rules       []ThresholdRule
	breachStore stores.BreachStore
}

func NewThresholdChecker(rules []ThresholdRule, breachStore stores.BreachStore) ThresholdChecker {
	return &thresholdChecker{rules: rules, breachStore: breachStore}
}

func (c *thresholdChecker) Check(ctx context.Context, record *models.MetricRecord) bool {
	for _, rule := range c.rules {
		if !strings.Contains(record.Name, rule.Pattern) {
			continue
		}
		// First matching pattern wins, breach or not.
		if record.Value <= rule.ThresholdMs {
			return false
		}

		breach := &models.ThresholdBreach{
			ID:        ulid.NewULID(),
			Metric:    record.Name,
			Value:     record.Value,
			Threshold: rule.ThresholdMs,
			Timestamp: record.Timestamp,
			Platform:  record.Platform,
			Metadata:  record.Metadata,
		}
		if err := c.breachStore.Append(ctx, breach); err != nil {
			loggers.Ctx(ctx).Error().
				Err(err).
				Str(loggers.FieldMetricName, record.Name).
				Msg("failed to persist threshold breach")
		} else {
			metricThresholdBreachesTotal.WithLabelValues(rule.Pattern).Inc()
		}
		return true
	}
	return false
}
