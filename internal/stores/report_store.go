package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/docstores"
)

var ErrReportNotFound = errors.New("report not found")

// PerformanceReportStore persists hourly performance reports.
// LatestBefore supports the degradation comparison against the
// immediately preceding period's report.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type PerformanceReportStore interface {
	Append(ctx context.Context, report *models.PerformanceReport) error
	LatestBefore(ctx context.Context, before time.Time) (*models.PerformanceReport, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

// AnalyticsReportStore persists daily analytics reports.
type AnalyticsReportStore interface {
	Append(ctx context.Context, report *models.AnalyticsReport) error
	LatestBefore(ctx context.Context, before time.Time) (*models.AnalyticsReport, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

type performanceReportStore struct {
	docStore docstores.DocStore
}

func NewPerformanceReportStore(docStore docstores.DocStore) PerformanceReportStore {
	return &performanceReportStore{docStore: docStore}
}

func (s *performanceReportStore) Append(ctx context.Context, report *models.PerformanceReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal performance report: %w", err)
	}
	if err := s.docStore.Append(ctx, CollPerfReports, report.ID, report.StartTime, data); err != nil {
		return fmt.Errorf("failed to store performance report: %w", err)
	}
	return nil
}

func (s *performanceReportStore) LatestBefore(ctx context.Context, before time.Time) (*models.PerformanceReport, error) {
	data, err := s.docStore.LatestBefore(ctx, CollPerfReports, before)
	if err != nil {
		if errors.Is(err, docstores.ErrDocNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get performance report: %w", err)
	}
	var report models.PerformanceReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal performance report: %w", err)
	}
	return &report, nil
}

func (s *performanceReportStore) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	return s.docStore.DeleteOlderThan(ctx, CollPerfReports, cutoff, limit)
}

type analyticsReportStore struct {
	docStore docstores.DocStore
}

func NewAnalyticsReportStore(docStore docstores.DocStore) AnalyticsReportStore {
	return &analyticsReportStore{docStore: docStore}
}

func (s *analyticsReportStore) Append(ctx context.Context, report *models.AnalyticsReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics report: %w", err)
	}
	if err := s.docStore.Append(ctx, CollAnalyticsReports, report.ID, report.StartTime, data); err != nil {
		return fmt.Errorf("failed to store analytics report: %w", err)
	}
	return nil
}

func (s *analyticsReportStore) LatestBefore(ctx context.Context, before time.Time) (*models.AnalyticsReport, error) {
	data, err := s.docStore.LatestBefore(ctx, CollAnalyticsReports, before)
	if err != nil {
		if errors.Is(err, docstores.ErrDocNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get analytics report: %w", err)
	}
	var report models.AnalyticsReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analytics report: %w", err)
	}
	return &report, nil
}

func (s *analyticsReportStore) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	return s.docStore.DeleteOlderThan(ctx, CollAnalyticsReports, cutoff, limit)
}
