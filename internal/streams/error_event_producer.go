package streams

import (
	"context"

	"telemetry-analytics/internal/errorsummary"
	"telemetry-analytics/internal/models"
)

// ErrorEventProducer publishes ingested error records onto the
// partitioned queue for asynchronous summary processing.
//
// Partition Strategy: the partition key is the error fingerprint, the
// same identity the summary document is keyed by. Events with the same
// fingerprint land in the same partition, and each partition is drained
// by a single worker goroutine, so all updates to one summary are
// processed sequentially. Combined with the store transaction's replay
// guard this gives exact occurrence counts without distributed locking,
// while different fingerprints still process in parallel.
//
//go:generate mockgen -source=error_event_producer.go -destination=./mocks/error_event_producer_mock.go -package=mocks
type ErrorEventProducer interface {
	Produce(ctx context.Context, record *models.ErrorRecord) error
}

type errorEventProducer struct {
	queue *PartitionedQueue[models.ErrorRecord]
}

func NewErrorEventProducer(queue *PartitionedQueue[models.ErrorRecord]) ErrorEventProducer {
	return &errorEventProducer{queue: queue}
}

func (producer *errorEventProducer) Produce(ctx context.Context, record *models.ErrorRecord) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	partitionKey := errorsummary.Fingerprint(record.Message, record.Stack)
	producer.queue.Publish(partitionKey, *record)
	metricErrorEventsProducedTotal.WithLabelValues(streamErrorEvents).Inc()
	return nil
}
