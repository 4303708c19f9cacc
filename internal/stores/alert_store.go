package stores

import (
	"context"
	"encoding/json"
	"fmt"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/docstores"
)

// BreachStore persists threshold breaches. Writes are fire-and-forget
// from the caller's point of view: the threshold checker logs a failed
// write and moves on.
//
//go:generate mockgen -source=alert_store.go -destination=./mocks/alert_store_mock.go -package=mocks
type BreachStore interface {
	Append(ctx context.Context, breach *models.ThresholdBreach) error
}

// AlertStore persists degradation and critical-error alerts.
type AlertStore interface {
	AppendDegradation(ctx context.Context, alert *models.DegradationAlert) error
	AppendCritical(ctx context.Context, alert *models.CriticalErrorAlert) error
}

type breachStore struct {
	docStore docstores.DocStore
}

func NewBreachStore(docStore docstores.DocStore) BreachStore {
	return &breachStore{docStore: docStore}
}

func (s *breachStore) Append(ctx context.Context, breach *models.ThresholdBreach) error {
	data, err := json.Marshal(breach)
	if err != nil {
		return fmt.Errorf("failed to marshal threshold breach: %w", err)
	}
	if err := s.docStore.Append(ctx, collThresholdBreaches, breach.ID, breach.Timestamp, data); err != nil {
		return fmt.Errorf("failed to store threshold breach: %w", err)
	}
	return nil
}

type alertStore struct {
	docStore docstores.DocStore
}

func NewAlertStore(docStore docstores.DocStore) AlertStore {
	return &alertStore{docStore: docStore}
}

func (s *alertStore) AppendDegradation(ctx context.Context, alert *models.DegradationAlert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal degradation alert: %w", err)
	}
	if err := s.docStore.Append(ctx, collDegradationAlerts, alert.ID, alert.Timestamp, data); err != nil {
		return fmt.Errorf("failed to store degradation alert: %w", err)
	}
	return nil
}

func (s *alertStore) AppendCritical(ctx context.Context, alert *models.CriticalErrorAlert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal critical alert: %w", err)
	}
	if err := s.docStore.Append(ctx, collCriticalAlerts, alert.ID, alert.Timestamp, data); err != nil {
		return fmt.Errorf("failed to store critical alert: %w", err)
	}
	return nil
}
