package aggregators

import (
	"context"
	"time"

	"telemetry-analytics/internal/stores"
)

// Sample is the aggregator's view of one raw record: a named value with
// its breakdown dimensions.
type Sample struct {
	Name       string
	Value      float64
	Platform   string
	AppVersion string
}

// RecordSource abstracts the raw collection an aggregation run reads.
// FetchWindow must return exactly the records whose server-assigned
// timestamp lies in [start, end).
//
//go:generate mockgen -source=record_source.go -destination=./mocks/record_source_mock.go -package=mocks
type RecordSource interface {
	FetchWindow(ctx context.Context, start, end time.Time) ([]Sample, error)
}

type metricRecordSource struct {
	store stores.RawMetricStore
}

// NewMetricRecordSource adapts the raw metric collection for aggregation.
func NewMetricRecordSource(store stores.RawMetricStore) RecordSource {
	return &metricRecordSource{store: store}
}

func (s *metricRecordSource) FetchWindow(ctx context.Context, start, end time.Time) ([]Sample, error) {
	records, err := s.store.QueryWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	samples := make([]Sample, 0, len(records))
	for _, record := range records {
		samples = append(samples, Sample{
			Name:       record.Name,
			Value:      record.Value,
			Platform:   record.Platform,
			AppVersion: record.AppVersion,
		})
	}
	return samples, nil
}

type eventRecordSource struct {
	store stores.RawEventStore
}

// NewEventRecordSource adapts the raw event collection for aggregation.
// Events carry no measured value; each occurrence counts as 1, except
// events that report a duration, which aggregate the duration so the
// rollup percentiles are meaningful.
func NewEventRecordSource(store stores.RawEventStore) RecordSource {
	return &eventRecordSource{store: store}
}

func (s *eventRecordSource) FetchWindow(ctx context.Context, start, end time.Time) ([]Sample, error) {
	records, err := s.store.QueryWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	samples := make([]Sample, 0, len(records))
	for _, record := range records {
		value := 1.0
		if record.DurationMs > 0 {
			value = record.DurationMs
		}
		samples = append(samples, Sample{
			Name:       record.Event,
			Value:      value,
			Platform:   record.Platform,
			AppVersion: record.AppVersion,
		})
	}
	return samples, nil
}
