package models

import "time"

// MetricUnit is the unit of a performance metric value.
type MetricUnit string

const (
	UnitMilliseconds MetricUnit = "ms"
	UnitBytes        MetricUnit = "bytes"
	UnitCount        MetricUnit = "count"
)

// ValidUnit reports whether u is one of the accepted metric units.
func ValidUnit(u MetricUnit) bool {
	switch u {
	case UnitMilliseconds, UnitBytes, UnitCount:
		return true
	}
	return false
}

// MetricRecord is a single raw performance measurement. Records are
// immutable once written: the aggregator only reads them and the
// retention sweeper eventually deletes them.
//
// Timestamp is always server-assigned at ingestion; any client-supplied
// value is discarded so clock skew cannot move a record between
// aggregation windows.
type MetricRecord struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Value      float64           `json:"value"`
	Unit       MetricUnit        `json:"unit"`
	Timestamp  time.Time         `json:"timestamp"`
	Platform   string            `json:"platform,omitempty"`
	AppVersion string            `json:"appVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ThresholdBreach records a single metric value exceeding its configured
// threshold. At most one breach is recorded per ingested value.
type ThresholdBreach struct {
	ID        string            `json:"id"`
	Metric    string            `json:"metric"`
	Value     float64           `json:"value"`
	Threshold float64           `json:"threshold"`
	Timestamp time.Time         `json:"timestamp"`
	Platform  string            `json:"platform,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}
