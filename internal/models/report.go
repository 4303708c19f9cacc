package models

import "time"

// ReportMetric is the cross-rollup aggregate of one metric/event name
// inside a report window.
//
// Percentile fields are merged as the median of the per-rollup
// percentiles rather than recomputed from raw records. This is a
// deliberate accuracy trade-off: recomputation would require the report
// generator to re-read the raw collections, changing its read pattern
// and cost. Averages are exact (count-weighted), min/max are exact
// (elementwise).
type ReportMetric struct {
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	P50     float64 `json:"p50"`
	P90     float64 `json:"p90"`
	P95     float64 `json:"p95"`
	P99     float64 `json:"p99"`
}

// PerformanceReport is the hourly cross-metric report.
type PerformanceReport struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	GeneratedAt time.Time `json:"generatedAt"`

	Metrics    map[string]ReportMetric `json:"metrics"`
	TopSlowest []ReportMetric          `json:"topSlowest,omitempty"` // descending by p90
	Platforms  map[string]int64        `json:"platforms,omitempty"`
}

// DegradationAlert records a statistically significant regression of one
// metric between consecutive performance reports.
type DegradationAlert struct {
	ID             string    `json:"id"`
	Metric         string    `json:"metric"`
	PreviousP90    float64   `json:"previousP90"`
	CurrentP90     float64   `json:"currentP90"`
	DegradationPct float64   `json:"degradationPct"`
	Timestamp      time.Time `json:"timestamp"`
}

// ConversionFunnel holds ratios between business-event counts within a
// report window. Ratios are percentages; a ratio is zero when its
// denominator is zero.
type ConversionFunnel struct {
	EventCounts map[string]int64 `json:"eventCounts"`

	SignUpToFamilyPct         float64 `json:"signUpToFamilyPct"`
	FamilyToTaskPct           float64 `json:"familyToTaskPct"`
	SignUpToPurchasePct       float64 `json:"signUpToPurchasePct"`
	SubscriptionChurnPct      float64 `json:"subscriptionChurnPct"`
	PurchaseToSubscriptionPct float64 `json:"purchaseToSubscriptionPct"`
}

// EngagementStats summarizes user activity within a report window.
type EngagementStats struct {
	ActiveUsers          int64   `json:"activeUsers"`
	SessionsPerUser      float64 `json:"sessionsPerUser"`
	AvgSessionDurationMs float64 `json:"avgSessionDurationMs"`
	// WeekOverWeekRetentionPct = |usersThisWeek ∩ usersPrevWeek| / |usersPrevWeek| * 100.
	WeekOverWeekRetentionPct float64 `json:"weekOverWeekRetentionPct"`
}

// AnalyticsReport is the daily cross-event report. Funnel and Engagement
// are best-effort enrichments: their absence (nil) means enrichment
// failed, not that the base report is invalid.
type AnalyticsReport struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	GeneratedAt time.Time `json:"generatedAt"`

	Events    map[string]ReportMetric `json:"events"`
	Platforms map[string]int64        `json:"platforms,omitempty"`

	Funnel     *ConversionFunnel `json:"funnel,omitempty"`
	Engagement *EngagementStats  `json:"engagement,omitempty"`
}
