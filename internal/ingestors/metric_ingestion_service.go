package ingestors

import (
	"context"
	"io"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/metrics"
	"telemetry-analytics/internal/shared/ulid"
	"telemetry-analytics/internal/stores"
)

const (
	maxBodyBytes = 2 * 1024 * 1024
	maxBatchSize = 500 // backend batch-write ceiling
	maxNameLen   = 256
)

// timeNow is the server clock used to stamp ingested records; it is a
// variable so tests can pin it.
var timeNow = func() time.Time {
	return time.Now().UTC()
}

// IngestResult reports how many records one call processed and the
// identifiers generated for them.
type IngestResult struct {
	Count int
	IDs   []string
}

// MetricIngestionService accepts a single performance metric or a batch
// of up to 500 and persists them as raw records. Timestamps are always
// server-assigned, overriding any client-supplied value, so clock skew
// cannot move a record between aggregation windows. Each persisted
// record is synchronously run through the threshold checker before the
// call returns.
//
// Re-sending the same batch produces a second, independent set of
// documents: raw ingestion is deliberately not deduplicated.
//
//go:generate mockgen -source=metric_ingestion_service.go -destination=./mocks/metric_ingestion_service_mock.go -package=mocks
type MetricIngestionService interface {
	IngestMetrics(ctx context.Context, r io.Reader) (*IngestResult, error)
}

// metricInput is the wire shape of one metric submission.
type metricInput struct {
	Name       string            `json:"name"`
	Value      *float64          `json:"value"`
	Unit       string            `json:"unit"`
	Platform   string            `json:"platform"`
	AppVersion string            `json:"appVersion"`
	Metadata   map[string]string `json:"metadata"`
}

type metricIngestionService struct {
	rawMetricStore   stores.RawMetricStore
	thresholdChecker ThresholdChecker
}

func NewMetricIngestionService(rawMetricStore stores.RawMetricStore, thresholdChecker ThresholdChecker) MetricIngestionService {
	return &metricIngestionService{
		rawMetricStore:   rawMetricStore,
		thresholdChecker: thresholdChecker,
	}
}

func (s *metricIngestionService) IngestMetrics(ctx context.Context, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	var inputs []metricInput
	if err := decodeSingleOrBatch(r, &inputs); err != nil {
		return nil, err
	}
	if err := validateBatchSize(len(inputs)); err != nil {
		return nil, err
	}

	records := make([]*models.MetricRecord, 0, len(inputs))
	for i, input := range inputs {
		record, err := s.validateMetricInput(&input, i)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	receivedAt := timeNow()
	ids := make([]string, 0, len(records))
	for _, record := range records {
		record.Timestamp = receivedAt
		if err := s.rawMetricStore.Append(ctx, record); err != nil {
			metricRecordsIngestedTotal.WithLabelValues(pipelineMetrics, codeInternalRawStoreFailed).Inc()
			return nil, errInternalRawStoreFailed(err)
		}
		ids = append(ids, record.ID)

		// Synchronous per-value threshold check; breach persistence is
		// best-effort inside the checker.
		s.thresholdChecker.Check(ctx, record)
	}

	logger.Debug().Int("count", len(ids)).Msg("metric batch ingested")
	metricRecordsIngestedTotal.WithLabelValues(pipelineMetrics, metrics.ValueNoError).Add(float64(len(ids)))

	return &IngestResult{Count: len(ids), IDs: ids}, nil
}

func (s *metricIngestionService) validateMetricInput(input *metricInput, index int) (*models.MetricRecord, error) {
	if input.Name == "" {
		return nil, errValidationFailedAt(index, "missing name")
	}
	if len(input.Name) > maxNameLen {
		return nil, errValidationFailedAt(index, "name too long")
	}
	if input.Value == nil {
		return nil, errValidationFailedAt(index, "missing value")
	}
	unit := models.MetricUnit(input.Unit)
	if input.Unit == "" {
		return nil, errValidationFailedAt(index, "missing unit")
	}
	if !models.ValidUnit(unit) {
		return nil, errValidationFailedAt(index, "unit must be one of ms, bytes, count")
	}

	return &models.MetricRecord{
		ID:         ulid.NewULID(),
		Name:       input.Name,
		Value:      *input.Value,
		Unit:       unit,
		Platform:   input.Platform,
		AppVersion: input.AppVersion,
		Metadata:   input.Metadata,
	}, nil
}
