package stores

import (
	"context"
	"testing"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/docstores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocStore(t *testing.T) docstores.DocStore {
	t.Helper()

	docStore, err := docstores.New(docstores.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, docStore.Close())
	})
	return docStore
}

func newErrorRecord(eventID string, ts time.Time) *models.ErrorRecord {
	return &models.ErrorRecord{
		ID:        "rec-" + eventID,
		EventID:   eventID,
		Message:   "App crash on startup",
		Stack:     "at boot.go:7",
		Severity:  models.SeverityCritical,
		Platform:  "ios",
		Timestamp: ts,
	}
}

func TestErrorSummaryStore_Apply_CreatesSummary(t *testing.T) {
	t.Parallel()

	store := NewErrorSummaryStore(newTestDocStore(t))
	ctx := context.Background()
	ts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	applied, err := store.Apply(ctx, "fp-1", newErrorRecord("evt-1", ts))
	require.NoError(t, err)
	assert.True(t, applied)

	summary, err := store.Get(ctx, "fp-1")
	require.NoError(t, err)
	assert.Equal(t, "fp-1", summary.Fingerprint)
	assert.Equal(t, "App crash on startup", summary.Message)
	assert.Equal(t, models.SeverityCritical, summary.Severity)
	assert.Equal(t, int64(1), summary.Count)
	assert.True(t, summary.FirstSeen.Equal(ts))
	assert.True(t, summary.LastSeen.Equal(ts))
	assert.Equal(t, "evt-1", summary.LastEventID)
	assert.Equal(t, map[string]int64{"ios": 1}, summary.Platforms)
}

func TestErrorSummaryStore_Apply_IncrementsDistinctEvents(t *testing.T) {
	t.Parallel()

	store := NewErrorSummaryStore(newTestDocStore(t))
	ctx := context.Background()
	first := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	applied, err := store.Apply(ctx, "fp-1", newErrorRecord("evt-1", first))
	require.NoError(t, err)
	assert.True(t, applied)

	later := newErrorRecord("evt-2", second)
	later.Platform = "android"
	applied, err = store.Apply(ctx, "fp-1", later)
	require.NoError(t, err)
	assert.True(t, applied)

	summary, err := store.Get(ctx, "fp-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.True(t, summary.FirstSeen.Equal(first))
	assert.True(t, summary.LastSeen.Equal(second))
	assert.Equal(t, "evt-2", summary.LastEventID)
	assert.Equal(t, map[string]int64{"ios": 1, "android": 1}, summary.Platforms)
}

func TestErrorSummaryStore_Apply_ReplayedEventNotCounted(t *testing.T) {
	t.Parallel()

	store := NewErrorSummaryStore(newTestDocStore(t))
	ctx := context.Background()
	ts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	applied, err := store.Apply(ctx, "fp-1", newErrorRecord("evt-1", ts))
	require.NoError(t, err)
	assert.True(t, applied)

	// The same delivery retried: same EventID, later timestamp.
	applied, err = store.Apply(ctx, "fp-1", newErrorRecord("evt-1", ts.Add(time.Minute)))
	require.NoError(t, err)
	assert.False(t, applied)

	summary, err := store.Get(ctx, "fp-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Count)
	assert.True(t, summary.LastSeen.Equal(ts))
}

func TestErrorSummaryStore_Apply_FingerprintsIsolated(t *testing.T) {
	t.Parallel()

	store := NewErrorSummaryStore(newTestDocStore(t))
	ctx := context.Background()
	ts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := store.Apply(ctx, "fp-1", newErrorRecord("evt-1", ts))
	require.NoError(t, err)
	_, err = store.Apply(ctx, "fp-2", newErrorRecord("evt-2", ts))
	require.NoError(t, err)

	first, err := store.Get(ctx, "fp-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Count)

	second, err := store.Get(ctx, "fp-2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Count)
}

func TestErrorSummaryStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	store := NewErrorSummaryStore(newTestDocStore(t))

	summary, err := store.Get(context.Background(), "missing")
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrSummaryNotFound)
}
