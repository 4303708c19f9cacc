package docstores_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"telemetry-analytics/internal/shared/docstores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) docstores.DocStore {
	t.Helper()

	store, err := docstores.New(docstores.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestNew_OnDiskRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := docstores.New(docstores.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, docstores.ErrInvalidPath)
}

func TestScan_HalfOpenWindowInOrder(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// Appended out of timestamp order on purpose.
	require.NoError(t, store.Append(ctx, "metrics", "c", base.Add(2*time.Minute), []byte("c")))
	require.NoError(t, store.Append(ctx, "metrics", "a", base, []byte("a")))
	require.NoError(t, store.Append(ctx, "metrics", "b", base.Add(time.Minute), []byte("b")))
	// At the window end: must be excluded.
	require.NoError(t, store.Append(ctx, "metrics", "d", base.Add(3*time.Minute), []byte("d")))
	// Before the window start: must be excluded.
	require.NoError(t, store.Append(ctx, "metrics", "z", base.Add(-time.Minute), []byte("z")))

	var ids []string
	err := store.Scan(ctx, "metrics", base, base.Add(3*time.Minute), func(id string, data []byte) error {
		ids = append(ids, id)
		assert.Equal(t, id, string(data))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestScan_CollectionsAreIsolated(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, "metrics", "m1", base, []byte("m")))
	require.NoError(t, store.Append(ctx, "events", "e1", base, []byte("e")))

	var ids []string
	err := store.Scan(ctx, "events", base.Add(-time.Hour), base.Add(time.Hour), func(id string, _ []byte) error {
		ids = append(ids, id)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, ids)
}

func TestScan_CallbackErrorStopsIteration(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, "metrics", "a", base, []byte("a")))
	require.NoError(t, store.Append(ctx, "metrics", "b", base.Add(time.Minute), []byte("b")))

	visited := 0
	wantErr := errors.New("stop")
	err := store.Scan(ctx, "metrics", base, base.Add(time.Hour), func(string, []byte) error {
		visited++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, visited)
}

func TestLatestBefore_Strict(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, "reports", "r1", base, []byte("first")))
	require.NoError(t, store.Append(ctx, "reports", "r2", base.Add(time.Hour), []byte("second")))

	data, err := store.LatestBefore(ctx, "reports", base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	// A document at exactly the bound does not count as "before" it.
	data, err = store.LatestBefore(ctx, "reports", base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	_, err = store.LatestBefore(ctx, "reports", base)
	assert.ErrorIs(t, err, docstores.ErrDocNotFound)
}

func TestDeleteOlderThan_BoundedAndIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("old-%d", i)
		require.NoError(t, store.Append(ctx, "metrics", id, base.Add(time.Duration(i)*time.Minute), []byte(id)))
	}
	require.NoError(t, store.Append(ctx, "metrics", "fresh", base.Add(time.Hour), []byte("fresh")))

	cutoff := base.Add(10 * time.Minute)

	deleted, err := store.DeleteOlderThan(ctx, "metrics", cutoff, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	deleted, err = store.DeleteOlderThan(ctx, "metrics", cutoff, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	deleted, err = store.DeleteOlderThan(ctx, "metrics", cutoff, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)

	var ids []string
	err = store.Scan(ctx, "metrics", base, base.Add(2*time.Hour), func(id string, _ []byte) error {
		ids = append(ids, id)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, ids)
}

func TestKeyed_GetAndUpdate(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetKeyed(ctx, "summaries", "fp-1")
	assert.ErrorIs(t, err, docstores.ErrDocNotFound)

	err = store.UpdateKeyed(ctx, "summaries", "fp-1", func(old []byte) ([]byte, error) {
		assert.Nil(t, old)
		return []byte("v1"), nil
	})
	require.NoError(t, err)

	err = store.UpdateKeyed(ctx, "summaries", "fp-1", func(old []byte) ([]byte, error) {
		assert.Equal(t, "v1", string(old))
		return []byte("v2"), nil
	})
	require.NoError(t, err)

	data, err := store.GetKeyed(ctx, "summaries", "fp-1")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestUpdateKeyed_NilLeavesDocumentUnchanged(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	err := store.UpdateKeyed(ctx, "summaries", "fp-1", func([]byte) ([]byte, error) {
		return []byte("v1"), nil
	})
	require.NoError(t, err)

	err = store.UpdateKeyed(ctx, "summaries", "fp-1", func([]byte) ([]byte, error) {
		return nil, nil
	})
	require.NoError(t, err)

	data, err := store.GetKeyed(ctx, "summaries", "fp-1")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
}

func TestUpdateKeyed_CallbackErrorAbortsTransaction(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	wantErr := errors.New("reject")
	err := store.UpdateKeyed(ctx, "summaries", "fp-1", func([]byte) ([]byte, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	_, err = store.GetKeyed(ctx, "summaries", "fp-1")
	assert.ErrorIs(t, err, docstores.ErrDocNotFound)
}
