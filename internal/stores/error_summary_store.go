package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/docstores"
)

var ErrSummaryNotFound = errors.New("error summary not found")

// ErrorSummaryStore maintains one summary document per error
// fingerprint. Apply runs as a single read-modify-write transaction with
// a replay guard: when the incoming record's EventID equals the
// summary's LastEventID, the count is not incremented again. This makes
// the count exact under at-least-once delivery of the same error event.
//
//go:generate mockgen -source=error_summary_store.go -destination=./mocks/error_summary_store_mock.go -package=mocks
type ErrorSummaryStore interface {
	// Apply folds the record into the fingerprint's summary. Returns false
	// when the record was recognized as a replay and skipped.
	Apply(ctx context.Context, fingerprint string, record *models.ErrorRecord) (bool, error)
	Get(ctx context.Context, fingerprint string) (*models.ErrorSummary, error)
}

type errorSummaryStore struct {
	docStore docstores.DocStore
}

func NewErrorSummaryStore(docStore docstores.DocStore) ErrorSummaryStore {
	return &errorSummaryStore{docStore: docStore}
}

func (s *errorSummaryStore) Apply(ctx context.Context, fingerprint string, record *models.ErrorRecord) (bool, error) {
	applied := false
	err := s.docStore.UpdateKeyed(ctx, collErrorSummaries, fingerprint, func(old []byte) ([]byte, error) {
		var summary models.ErrorSummary
		if old == nil {
			summary = models.ErrorSummary{
				Fingerprint: fingerprint,
				Message:     record.Message,
				Severity:    record.Severity,
				FirstSeen:   record.Timestamp,
				Platforms:   make(map[string]int64),
			}
		} else {
			if err := json.Unmarshal(old, &summary); err != nil {
				return nil, fmt.Errorf("failed to unmarshal error summary: %w", err)
			}
			if summary.LastEventID == record.EventID {
				// Replay of the last applied event: leave the document as is.
				return nil, nil
			}
			if summary.Platforms == nil {
				summary.Platforms = make(map[string]int64)
			}
		}

		summary.Count++
		summary.LastSeen = record.Timestamp
		summary.LastEventID = record.EventID
		if record.Platform != "" {
			summary.Platforms[record.Platform]++
		}

		applied = true
		return json.Marshal(summary)
	})
	if err != nil {
		return false, fmt.Errorf("failed to apply error summary: %w", err)
	}
	return applied, nil
}

func (s *errorSummaryStore) Get(ctx context.Context, fingerprint string) (*models.ErrorSummary, error) {
	data, err := s.docStore.GetKeyed(ctx, collErrorSummaries, fingerprint)
	if err != nil {
		if errors.Is(err, docstores.ErrDocNotFound) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get error summary: %w", err)
	}
	var summary models.ErrorSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal error summary: %w", err)
	}
	return &summary, nil
}
