package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/docstores"
)

// RollupStore persists append-only aggregation rollups. One instance is
// created per rollup collection (CollPerfRollups, CollEventRollups).
// Rollups are keyed by their window start time so the report generator's
// window query picks up every rollup whose window began in the report
// period.
//
//go:generate mockgen -source=rollup_store.go -destination=./mocks/rollup_store_mock.go -package=mocks
type RollupStore interface {
	Append(ctx context.Context, rollup *models.Rollup) error
	QueryWindow(ctx context.Context, start, end time.Time) ([]*models.Rollup, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

type rollupStore struct {
	docStore   docstores.DocStore
	collection string
}

func NewRollupStore(docStore docstores.DocStore, collection string) RollupStore {
	return &rollupStore{docStore: docStore, collection: collection}
}

func (s *rollupStore) Append(ctx context.Context, rollup *models.Rollup) error {
	data, err := json.Marshal(rollup)
	if err != nil {
		return fmt.Errorf("failed to marshal rollup: %w", err)
	}
	if err := s.docStore.Append(ctx, s.collection, rollup.ID, rollup.StartTime, data); err != nil {
		return fmt.Errorf("failed to store rollup: %w", err)
	}
	return nil
}

func (s *rollupStore) QueryWindow(ctx context.Context, start, end time.Time) ([]*models.Rollup, error) {
	var rollups []*models.Rollup
	err := s.docStore.Scan(ctx, s.collection, start, end, func(_ string, data []byte) error {
		var rollup models.Rollup
		if err := json.Unmarshal(data, &rollup); err != nil {
			return fmt.Errorf("failed to unmarshal rollup: %w", err)
		}
		rollups = append(rollups, &rollup)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query rollups: %w", err)
	}
	return rollups, nil
}

func (s *rollupStore) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	return s.docStore.DeleteOlderThan(ctx, s.collection, cutoff, limit)
}
