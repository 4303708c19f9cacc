package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/docstores"
)

// RawEventStore persists raw analytics event records.
//
//go:generate mockgen -source=raw_event_store.go -destination=./mocks/raw_event_store_mock.go -package=mocks
type RawEventStore interface {
	Append(ctx context.Context, record *models.EventRecord) error
	QueryWindow(ctx context.Context, start, end time.Time) ([]*models.EventRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

type rawEventStore struct {
	docStore docstores.DocStore
}

func NewRawEventStore(docStore docstores.DocStore) RawEventStore {
	return &rawEventStore{docStore: docStore}
}

func (s *rawEventStore) Append(ctx context.Context, record *models.EventRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal event record: %w", err)
	}
	if err := s.docStore.Append(ctx, CollRawEvents, record.ID, record.Timestamp, data); err != nil {
		return fmt.Errorf("failed to store event record: %w", err)
	}
	return nil
}

func (s *rawEventStore) QueryWindow(ctx context.Context, start, end time.Time) ([]*models.EventRecord, error) {
	var records []*models.EventRecord
	err := s.docStore.Scan(ctx, CollRawEvents, start, end, func(_ string, data []byte) error {
		var record models.EventRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal event record: %w", err)
		}
		records = append(records, &record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query event records: %w", err)
	}
	return records, nil
}

func (s *rawEventStore) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	return s.docStore.DeleteOlderThan(ctx, CollRawEvents, cutoff, limit)
}
