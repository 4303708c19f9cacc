package ingestors

import (
	"context"
	"io"
	"strings"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/metrics"
	"telemetry-analytics/internal/shared/ulid"
	"telemetry-analytics/internal/stores"
	"telemetry-analytics/internal/streams"
)

// SeverityRule assigns a severity to error messages containing any of
// its keywords. Rules are checked in table order; the first rule with a
// matching keyword wins. Injected from configuration.
type SeverityRule struct {
	Severity models.Severity
	Keywords []string
}

// ErrorIngestionService accepts error reports. The raw report is
// persisted synchronously; summary processing (fingerprint counting,
// critical alerts) happens asynchronously through the partitioned error
// stream, so a slow summary transaction never delays the caller.
//
// EventID is the client's delivery identifier: retried deliveries reuse
// it, and the summary pipeline's replay guard keys off it. When the
// client supplies none, one is generated, making each such report a
// distinct occurrence.
//
//go:generate mockgen -source=error_ingestion_service.go -destination=./mocks/error_ingestion_service_mock.go -package=mocks
type ErrorIngestionService interface {
	IngestErrors(ctx context.Context, r io.Reader) (*IngestResult, error)
}

// errorInput is the wire shape of one error report submission.
type errorInput struct {
	Message    string            `json:"message"`
	Stack      string            `json:"stack"`
	EventID    string            `json:"eventId"`
	Platform   string            `json:"platform"`
	AppVersion string            `json:"appVersion"`
	Metadata   map[string]string `json:"metadata"`
}

type errorIngestionService struct {
	severityRules    []SeverityRule
	errorReportStore stores.ErrorReportStore
	producer         streams.ErrorEventProducer
}

func NewErrorIngestionService(severityRules []SeverityRule, errorReportStore stores.ErrorReportStore, producer streams.ErrorEventProducer) ErrorIngestionService {
	return &errorIngestionService{
		severityRules:    severityRules,
		errorReportStore: errorReportStore,
		producer:         producer,
	}
}

func (s *errorIngestionService) IngestErrors(ctx context.Context, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	var inputs []errorInput
	if err := decodeSingleOrBatch(r, &inputs); err != nil {
		return nil, err
	}
	if err := validateBatchSize(len(inputs)); err != nil {
		return nil, err
	}

	records := make([]*models.ErrorRecord, 0, len(inputs))
	for i, input := range inputs {
		record, err := s.validateErrorInput(&input, i)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	receivedAt := timeNow()
	ids := make([]string, 0, len(records))
	for _, record := range records {
		record.Timestamp = receivedAt
		if err := s.errorReportStore.Append(ctx, record); err != nil {
			metricRecordsIngestedTotal.WithLabelValues(pipelineErrors, codeInternalRawStoreFailed).Inc()
			return nil, errInternalRawStoreFailed(err)
		}
		ids = append(ids, record.ID)

		if err := s.producer.Produce(ctx, record); err != nil {
			return nil, errInternalErrorStreamFailed(err)
		}
	}

	logger.Debug().Int("count", len(ids)).Msg("error batch ingested")
	metricRecordsIngestedTotal.WithLabelValues(pipelineErrors, metrics.ValueNoError).Add(float64(len(ids)))

	return &IngestResult{Count: len(ids), IDs: ids}, nil
}

func (s *errorIngestionService) validateErrorInput(input *errorInput, index int) (*models.ErrorRecord, error) {
	if input.Message == "" {
		return nil, errValidationFailedAt(index, "missing message")
	}
	if input.Platform == "" {
		return nil, errValidationFailedAt(index, "missing platform")
	}

	eventID := strings.TrimSpace(input.EventID)
	if eventID == "" {
		eventID = ulid.NewULID()
	}

	return &models.ErrorRecord{
		ID:         ulid.NewULID(),
		EventID:    eventID,
		Message:    input.Message,
		Stack:      input.Stack,
		Severity:   s.classifySeverity(input.Message),
		Platform:   input.Platform,
		AppVersion: input.AppVersion,
		Metadata:   input.Metadata,
	}, nil
}

// classifySeverity scans the rule table in order; the first rule with a
// keyword contained in the message (case-insensitive) wins.
func (s *errorIngestionService) classifySeverity(message string) models.Severity {
	lowered := strings.ToLower(message)
	for _, rule := range s.severityRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, strings.ToLower(keyword)) {
				return rule.Severity
			}
		}
	}
	return models.SeverityLow
}
