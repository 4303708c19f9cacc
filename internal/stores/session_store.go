package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/docstores"
)

// SessionStore persists the denormalized session records written when a
// session_ended event is ingested.
//
//go:generate mockgen -source=session_store.go -destination=./mocks/session_store_mock.go -package=mocks
type SessionStore interface {
	Append(ctx context.Context, record *models.SessionRecord) error
	QueryWindow(ctx context.Context, start, end time.Time) ([]*models.SessionRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

type sessionStore struct {
	docStore docstores.DocStore
}

func NewSessionStore(docStore docstores.DocStore) SessionStore {
	return &sessionStore{docStore: docStore}
}

func (s *sessionStore) Append(ctx context.Context, record *models.SessionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}
	if err := s.docStore.Append(ctx, CollSessions, record.ID, record.Timestamp, data); err != nil {
		return fmt.Errorf("failed to store session record: %w", err)
	}
	return nil
}

func (s *sessionStore) QueryWindow(ctx context.Context, start, end time.Time) ([]*models.SessionRecord, error) {
	var records []*models.SessionRecord
	err := s.docStore.Scan(ctx, CollSessions, start, end, func(_ string, data []byte) error {
		var record models.SessionRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal session record: %w", err)
		}
		records = append(records, &record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query session records: %w", err)
	}
	return records, nil
}

func (s *sessionStore) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	return s.docStore.DeleteOlderThan(ctx, CollSessions, cutoff, limit)
}
