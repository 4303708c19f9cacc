package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/docstores"
)

// RawMetricStore persists raw performance metric records. Records are
// append-only; QueryWindow scans the half-open interval [start, end) so
// a record belongs to exactly one aggregation window.
//
//go:generate mockgen -source=raw_metric_store.go -destination=./mocks/raw_metric_store_mock.go -package=mocks
type RawMetricStore interface {
	Append(ctx context.Context, record *models.MetricRecord) error
	QueryWindow(ctx context.Context, start, end time.Time) ([]*models.MetricRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

type rawMetricStore struct {
	docStore docstores.DocStore
}

func NewRawMetricStore(docStore docstores.DocStore) RawMetricStore {
	return &rawMetricStore{docStore: docStore}
}

func (s *rawMetricStore) Append(ctx context.Context, record *models.MetricRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal metric record: %w", err)
	}
	if err := s.docStore.Append(ctx, CollRawMetrics, record.ID, record.Timestamp, data); err != nil {
		return fmt.Errorf("failed to store metric record: %w", err)
	}
	return nil
}

func (s *rawMetricStore) QueryWindow(ctx context.Context, start, end time.Time) ([]*models.MetricRecord, error) {
	var records []*models.MetricRecord
	err := s.docStore.Scan(ctx, CollRawMetrics, start, end, func(_ string, data []byte) error {
		var record models.MetricRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal metric record: %w", err)
		}
		records = append(records, &record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query metric records: %w", err)
	}
	return records, nil
}

func (s *rawMetricStore) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	return s.docStore.DeleteOlderThan(ctx, CollRawMetrics, cutoff, limit)
}
