package models

import (
	"fmt"
	"time"
)

// Period classifies a rollup by the report that consumes it: hourly
// performance reports merge hour-period rollups, daily analytics reports
// merge day-period rollups.
type Period string

const (
	PeriodHour Period = "hour"
	PeriodDay  Period = "day"
	PeriodWeek Period = "week"
)

func (p Period) Duration() time.Duration {
	switch p {
	case PeriodHour:
		return time.Hour
	case PeriodDay:
		return 24 * time.Hour
	case PeriodWeek:
		return 7 * 24 * time.Hour
	default:
		panic(fmt.Sprintf("invalid Period: %q", p))
	}
}

// FormatWindowStart renders a window start as a compact UTC label,
// truncated to the period boundary.
func (p Period) FormatWindowStart(t time.Time) string {
	utc := t.UTC().Truncate(p.Duration())

	switch p {
	case PeriodHour:
		return utc.Format("20060102T15Z")
	case PeriodDay, PeriodWeek:
		return utc.Format("20060102Z")
	}
	return ""
}

// BucketID identifies the time bucket within a repeating cycle, used as
// a low-cardinality metric label.
func (p Period) BucketID(t time.Time) string {
	utc := t.UTC()

	switch p {
	case PeriodHour:
		return fmt.Sprintf("hour-%02d", utc.Hour())
	case PeriodDay, PeriodWeek:
		return fmt.Sprintf("day-%02d", utc.Day())
	}
	return ""
}
