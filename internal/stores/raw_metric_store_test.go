package stores

import (
	"context"
	"testing"
	"time"

	"telemetry-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawMetricStore_QueryWindow(t *testing.T) {
	t.Parallel()

	store := NewRawMetricStore(newTestDocStore(t))
	ctx := context.Background()
	windowStart := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	windowEnd := windowStart.Add(5 * time.Minute)

	inWindow := &models.MetricRecord{
		ID:        "m1",
		Name:      "api_call",
		Value:     120,
		Unit:      "ms",
		Platform:  "ios",
		Timestamp: windowStart.Add(2 * time.Minute),
	}
	atWindowEnd := &models.MetricRecord{
		ID:        "m2",
		Name:      "api_call",
		Value:     200,
		Unit:      "ms",
		Timestamp: windowEnd,
	}

	require.NoError(t, store.Append(ctx, inWindow))
	require.NoError(t, store.Append(ctx, atWindowEnd))

	records, err := store.QueryWindow(ctx, windowStart, windowEnd)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "m1", records[0].ID)
	assert.Equal(t, "api_call", records[0].Name)
	assert.Equal(t, 120.0, records[0].Value)
	assert.Equal(t, "ios", records[0].Platform)
	assert.True(t, records[0].Timestamp.Equal(inWindow.Timestamp))
}

func TestRawMetricStore_DeleteOlderThan(t *testing.T) {
	t.Parallel()

	store := NewRawMetricStore(newTestDocStore(t))
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	old := &models.MetricRecord{ID: "old", Name: "api_call", Value: 1, Unit: "ms", Timestamp: now.Add(-48 * time.Hour)}
	fresh := &models.MetricRecord{ID: "fresh", Name: "api_call", Value: 2, Unit: "ms", Timestamp: now}
	require.NoError(t, store.Append(ctx, old))
	require.NoError(t, store.Append(ctx, fresh))

	deleted, err := store.DeleteOlderThan(ctx, now.Add(-24*time.Hour), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	records, err := store.QueryWindow(ctx, now.Add(-72*time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fresh", records[0].ID)
}
