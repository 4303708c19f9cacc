package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/docstores"
)

// ErrorReportStore persists raw error reports.
//
//go:generate mockgen -source=error_report_store.go -destination=./mocks/error_report_store_mock.go -package=mocks
type ErrorReportStore interface {
	Append(ctx context.Context, record *models.ErrorRecord) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

type errorReportStore struct {
	docStore docstores.DocStore
}

func NewErrorReportStore(docStore docstores.DocStore) ErrorReportStore {
	return &errorReportStore{docStore: docStore}
}

func (s *errorReportStore) Append(ctx context.Context, record *models.ErrorRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal error report: %w", err)
	}
	if err := s.docStore.Append(ctx, CollErrorReports, record.ID, record.Timestamp, data); err != nil {
		return fmt.Errorf("failed to store error report: %w", err)
	}
	return nil
}

func (s *errorReportStore) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	return s.docStore.DeleteOlderThan(ctx, CollErrorReports, cutoff, limit)
}
