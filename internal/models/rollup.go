package models

import "time"

// Rollup is the aggregate of one metric or event name over one
// aggregation window. Rollups are append-only: the aggregator creates
// them, the report generators read them, and the retention sweeper
// eventually deletes them. Overlapping aggregator runs may produce
// duplicate-but-equivalent rollups for a window; report merging weights
// by count, so duplicates are absorbed rather than corrupting results.
type Rollup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Period    Period    `json:"period"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Count   int64   `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	P50     float64 `json:"p50"`
	P90     float64 `json:"p90"`
	P95     float64 `json:"p95"`
	P99     float64 `json:"p99"`

	Platforms   map[string]int64 `json:"platforms,omitempty"`
	AppVersions map[string]int64 `json:"appVersions,omitempty"`
}
