package retention

import (
	"context"
	"errors"
	"time"

	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/metrics"
)

// DeleteFunc removes at most limit documents strictly older than cutoff
// and returns the number removed.
type DeleteFunc func(ctx context.Context, cutoff time.Time, limit int) (int, error)

// Target is one collection under retention: its name, the age past
// which documents are deleted, and the store's bounded delete.
// A zero MaxAge keeps the collection forever.
type Target struct {
	Collection string
	MaxAge     time.Duration
	Delete     DeleteFunc
}

// Sweeper deletes expired documents. Each invocation makes bounded
// progress (at most limit deletions per collection) instead of looping
// until empty; full cleanup relies on the next scheduled run. A sweep is
// idempotent and safe to run concurrently: it only ever deletes
// documents strictly older than a cutoff derived from the clock.
//
//go:generate mockgen -source=sweeper.go -destination=./mocks/sweeper_mock.go -package=mocks
type Sweeper interface {
	Sweep(ctx context.Context) error
}

type sweeper struct {
	targets []Target
	limit   int
}

func NewSweeper(limit int, targets ...Target) Sweeper {
	return &sweeper{targets: targets, limit: limit}
}

func (s *sweeper) Sweep(ctx context.Context) error {
	logger := loggers.Ctx(ctx)
	now := time.Now().UTC()

	var errs []error
	for _, target := range s.targets {
		if target.MaxAge <= 0 {
			continue
		}
		cutoff := now.Add(-target.MaxAge)
		deleted, err := target.Delete(ctx, cutoff, s.limit)
		if err != nil {
			// Keep sweeping the remaining collections; a failed collection is
			// retried with a fresh cutoff on the next run.
			logger.Error().
				Err(err).
				Str(loggers.FieldCollection, target.Collection).
				Msg("retention sweep failed for collection")
			errs = append(errs, err)
			continue
		}
		if deleted > 0 {
			metricDocumentsSweptTotal.WithLabelValues(target.Collection).Add(float64(deleted))
			logger.Info().
				Str(loggers.FieldCollection, target.Collection).
				Int("deleted", deleted).
				Time("cutoff", cutoff).
				Msg("retention sweep removed expired documents")
		}
	}
	return errors.Join(errs...)
}

var (
	metricDocumentsSweptTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRetention,
			Name:      "documents_swept_total",
		},
		[]string{"collection"},
	)
)
