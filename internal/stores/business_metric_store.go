package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/docstores"
)

// BusinessMetricStore holds the denormalized copies of conversion-funnel
// events. The daily report computes funnel ratios from CountByEvent
// without scanning the full raw-events collection.
//
//go:generate mockgen -source=business_metric_store.go -destination=./mocks/business_metric_store_mock.go -package=mocks
type BusinessMetricStore interface {
	Append(ctx context.Context, record *models.EventRecord) error
	CountByEvent(ctx context.Context, start, end time.Time) (map[string]int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

type businessMetricStore struct {
	docStore docstores.DocStore
}

func NewBusinessMetricStore(docStore docstores.DocStore) BusinessMetricStore {
	return &businessMetricStore{docStore: docStore}
}

func (s *businessMetricStore) Append(ctx context.Context, record *models.EventRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal business metric: %w", err)
	}
	if err := s.docStore.Append(ctx, CollBusinessMetrics, record.ID, record.Timestamp, data); err != nil {
		return fmt.Errorf("failed to store business metric: %w", err)
	}
	return nil
}

func (s *businessMetricStore) CountByEvent(ctx context.Context, start, end time.Time) (map[string]int64, error) {
	counts := make(map[string]int64)
	err := s.docStore.Scan(ctx, CollBusinessMetrics, start, end, func(_ string, data []byte) error {
		var record models.EventRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal business metric: %w", err)
		}
		counts[record.Event]++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count business metrics: %w", err)
	}
	return counts, nil
}

func (s *businessMetricStore) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	return s.docStore.DeleteOlderThan(ctx, CollBusinessMetrics, cutoff, limit)
}
