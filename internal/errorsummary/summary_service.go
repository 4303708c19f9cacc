package errorsummary

import (
	"context"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/svcerrors"
	"telemetry-analytics/internal/shared/ulid"
	"telemetry-analytics/internal/stores"
)

// SummaryService folds one error record into its fingerprint's summary
// document. The store transaction carries the replay guard, so calling
// Record twice with the same EventID increments the count once; the
// stream's fingerprint partitioning additionally serializes all writers
// of one summary.
//
//go:generate mockgen -source=summary_service.go -destination=./mocks/summary_service_mock.go -package=mocks
type SummaryService interface {
	Record(ctx context.Context, record *models.ErrorRecord) *svcerrors.ServiceError
}

type summaryService struct {
	summaryStore stores.ErrorSummaryStore
	alertStore   stores.AlertStore
}

func NewSummaryService(summaryStore stores.ErrorSummaryStore, alertStore stores.AlertStore) SummaryService {
	return &summaryService{summaryStore: summaryStore, alertStore: alertStore}
}

func (s *summaryService) Record(ctx context.Context, record *models.ErrorRecord) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)

	fingerprint := Fingerprint(record.Message, record.Stack)

	applied, err := s.summaryStore.Apply(ctx, fingerprint, record)
	if err != nil {
		return errInternalSummaryStoreFailed(err)
	}
	if !applied {
		logger.Debug().
			Str(loggers.FieldFingerprint, fingerprint).
			Msg("replayed error event skipped")
		metricSummariesSkippedTotal.Inc()
		return nil
	}

	metricSummariesAppliedTotal.WithLabelValues(string(record.Severity)).Inc()

	// Critical alerting is a best-effort enrichment: the summary is already
	// committed, so a failed alert write is logged and dropped.
	if record.Severity == models.SeverityCritical {
		alert := &models.CriticalErrorAlert{
			ID:          ulid.NewULID(),
			Fingerprint: fingerprint,
			Message:     record.Message,
			Platform:    record.Platform,
			Timestamp:   record.Timestamp,
		}
		if err := s.alertStore.AppendCritical(ctx, alert); err != nil {
			logger.Error().
				Err(err).
				Str(loggers.FieldFingerprint, fingerprint).
				Msg("failed to persist critical error alert")
		}
	}

	return nil
}
