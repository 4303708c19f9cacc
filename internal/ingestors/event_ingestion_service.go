package ingestors

import (
	"context"
	"io"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/metrics"
	"telemetry-analytics/internal/shared/ulid"
	"telemetry-analytics/internal/stores"

	"github.com/mileusna/useragent"
)

// EventIngestionService accepts analytics events. Beyond raw
// persistence it performs two denormalizations inside the same call:
// business-funnel events get a copy in the business-metrics collection,
// and session_ended events get a session record used for engagement
// statistics. Both copies are written synchronously so the daily report
// can rely on them being present for any acknowledged event.
//
//go:generate mockgen -source=event_ingestion_service.go -destination=./mocks/event_ingestion_service_mock.go -package=mocks
type EventIngestionService interface {
	IngestEvents(ctx context.Context, r io.Reader) (*IngestResult, error)
}

// eventInput is the wire shape of one analytics event submission.
type eventInput struct {
	Event      string            `json:"event"`
	Platform   string            `json:"platform"`
	AppVersion string            `json:"appVersion"`
	UserID     string            `json:"userId"`
	FamilyID   string            `json:"familyId"`
	SessionID  string            `json:"sessionId"`
	UserAgent  string            `json:"userAgent"`
	DurationMs float64           `json:"durationMs"`
	Metadata   map[string]string `json:"metadata"`
}

type eventIngestionService struct {
	rawEventStore       stores.RawEventStore
	businessMetricStore stores.BusinessMetricStore
	sessionStore        stores.SessionStore
}

func NewEventIngestionService(rawEventStore stores.RawEventStore, businessMetricStore stores.BusinessMetricStore, sessionStore stores.SessionStore) EventIngestionService {
	return &eventIngestionService{
		rawEventStore:       rawEventStore,
		businessMetricStore: businessMetricStore,
		sessionStore:        sessionStore,
	}
}

func (s *eventIngestionService) IngestEvents(ctx context.Context, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	var inputs []eventInput
	if err := decodeSingleOrBatch(r, &inputs); err != nil {
		return nil, err
	}
	if err := validateBatchSize(len(inputs)); err != nil {
		return nil, err
	}

	records := make([]*models.EventRecord, 0, len(inputs))
	for i, input := range inputs {
		record, err := s.validateEventInput(&input, i)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	receivedAt := timeNow()
	ids := make([]string, 0, len(records))
	for _, record := range records {
		record.Timestamp = receivedAt
		if err := s.rawEventStore.Append(ctx, record); err != nil {
			metricRecordsIngestedTotal.WithLabelValues(pipelineEvents, codeInternalRawStoreFailed).Inc()
			return nil, errInternalRawStoreFailed(err)
		}
		ids = append(ids, record.ID)

		if models.BusinessEvent(record.Event) {
			if err := s.businessMetricStore.Append(ctx, record); err != nil {
				return nil, errInternalDenormalizeFailed(err)
			}
		}
		if record.Event == models.EventSessionEnded {
			session := &models.SessionRecord{
				ID:         record.ID,
				UserID:     record.UserID,
				SessionID:  record.SessionID,
				Platform:   record.Platform,
				DurationMs: record.DurationMs,
				Timestamp:  record.Timestamp,
			}
			if err := s.sessionStore.Append(ctx, session); err != nil {
				return nil, errInternalDenormalizeFailed(err)
			}
		}
	}

	logger.Debug().Int("count", len(ids)).Msg("event batch ingested")
	metricRecordsIngestedTotal.WithLabelValues(pipelineEvents, metrics.ValueNoError).Add(float64(len(ids)))

	return &IngestResult{Count: len(ids), IDs: ids}, nil
}

func (s *eventIngestionService) validateEventInput(input *eventInput, index int) (*models.EventRecord, error) {
	if input.Event == "" {
		return nil, errValidationFailedAt(index, "missing event")
	}
	if len(input.Event) > maxNameLen {
		return nil, errValidationFailedAt(index, "event too long")
	}
	if input.Platform == "" {
		return nil, errValidationFailedAt(index, "missing platform")
	}
	if input.Event == models.EventSessionEnded && input.SessionID == "" {
		return nil, errValidationFailedAt(index, "missing sessionId for session_ended")
	}

	return &models.EventRecord{
		ID:         ulid.NewULID(),
		Event:      input.Event,
		Platform:   input.Platform,
		AppVersion: input.AppVersion,
		UserID:     input.UserID,
		FamilyID:   input.FamilyID,
		SessionID:  input.SessionID,
		Client:     normalizeUserAgent(input.UserAgent),
		DurationMs: input.DurationMs,
		Metadata:   input.Metadata,
	}, nil
}

// normalizeUserAgent reduces a raw user-agent string to its client
// family, or returns the original when parsing yields nothing.
func normalizeUserAgent(ua string) string {
	if ua == "" {
		return ""
	}
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
