package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"telemetry-analytics/internal/errorsummary"
	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/metrics"
	"telemetry-analytics/internal/shared/svcerrors"
	"telemetry-analytics/internal/shared/ulid"
)

//go:generate mockgen -source=error_event_consumer.go -destination=./mocks/error_event_consumer_mock.go -package=mocks
type ErrorEventConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type errorEventConsumer struct {
	queue          *PartitionedQueue[models.ErrorRecord]
	summaryService errorsummary.SummaryService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewErrorEventConsumer(queue *PartitionedQueue[models.ErrorRecord], summaryService errorsummary.SummaryService, logger loggers.Logger) ErrorEventConsumer {
	return &errorEventConsumer{
		queue:          queue,
		summaryService: summaryService,
		stopCh:         make(chan struct{}),
		logger:         logger,
	}
}

// Start spawns 1 worker goroutine per partition. Each partition is a
// single-writer lane for the fingerprints routed to it by the producer.
func (consumer *errorEventConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *errorEventConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *errorEventConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan models.ErrorRecord) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case record := <-ch:
			// Handle panic recovery to prevent worker goroutine from crashing
			func() {
				defer func() {
					if r := recover(); r != nil {
						loggers.Ctx(ctx).Error().
							Bytes(loggers.FieldErrorStack, debug.Stack()).
							Msg("consumer panic recovered")

						var panicErr error
						if err, ok := r.(error); ok {
							panicErr = err
						} else {
							panicErr = fmt.Errorf("%v", r)
						}

						svcErr := svcerrors.NewInternalErrorPanic(panicErr)
						metricErrorEventsConsumedTotal.WithLabelValues(streamErrorEvents, svcErr.Code).Inc()
					}
				}()

				workerCtx := consumer.logger.With().
					Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
					Str(loggers.FieldRequestID, ulid.NewULID()).
					Logger().WithContext(ctx)
				svcError := consumer.summaryService.Record(workerCtx, &record)
				if svcError != nil {
					metricErrorEventsConsumedTotal.WithLabelValues(streamErrorEvents, svcError.Code).Inc()
				} else {
					metricErrorEventsConsumedTotal.WithLabelValues(streamErrorEvents, metrics.ValueNoError).Inc()
				}
			}()
		}
	}
}
