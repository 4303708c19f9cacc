package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Duration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Hour, PeriodHour.Duration())
	assert.Equal(t, 24*time.Hour, PeriodDay.Duration())
	assert.Equal(t, 7*24*time.Hour, PeriodWeek.Duration())
}

func TestPeriod_Duration_InvalidPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Period("fortnight").Duration()
	})
}

func TestPeriod_FormatWindowStart(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 10, 9, 42, 13, 0, time.UTC)

	assert.Equal(t, "20260310T09Z", PeriodHour.FormatWindowStart(ts))
	assert.Equal(t, "20260310Z", PeriodDay.FormatWindowStart(ts))
}

func TestPeriod_FormatWindowStart_NonUTCInput(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+7", 7*3600)
	ts := time.Date(2026, 3, 10, 2, 30, 0, 0, loc) // 2026-03-09 19:30 UTC

	assert.Equal(t, "20260309T19Z", PeriodHour.FormatWindowStart(ts))
}

func TestPeriod_BucketID(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "hour-09", PeriodHour.BucketID(ts))
	assert.Equal(t, "day-10", PeriodDay.BucketID(ts))
}
