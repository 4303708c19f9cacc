package schedulers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/metrics"
	"telemetry-analytics/internal/shared/svcerrors"
	"telemetry-analytics/internal/shared/ulid"
)

// Job is a unit of periodic background work (aggregation, report
// generation, retention sweeps).
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// timeNow is a seam for tests.
var timeNow = func() time.Time {
	return time.Now().UTC()
}

type entry struct {
	job Job

	// interval jobs fire on a fixed ticker; daily jobs fire at a
	// fixed local hour. Exactly one of the two is set.
	interval time.Duration
	dailyAt  int
	location *time.Location
}

// Scheduler runs registered jobs on their own goroutines until stopped.
type Scheduler struct {
	entries []entry

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewScheduler(logger loggers.Logger) *Scheduler {
	return &Scheduler{
		stopCh: make(chan struct{}),
		logger: logger,
	}
}

// AddInterval registers a job that runs every interval, starting one
// interval after Start.
func (scheduler *Scheduler) AddInterval(job Job, interval time.Duration) {
	scheduler.entries = append(scheduler.entries, entry{job: job, interval: interval})
}

// AddDaily registers a job that runs once a day at the given hour in
// the given location.
func (scheduler *Scheduler) AddDaily(job Job, hour int, location *time.Location) {
	scheduler.entries = append(scheduler.entries, entry{job: job, dailyAt: hour, location: location})
}

// Start spawns 1 goroutine per registered job.
func (scheduler *Scheduler) Start(ctx context.Context) {
	for _, jobEntry := range scheduler.entries {
		scheduler.wg.Add(1)
		go func(jobEntry entry) {
			defer scheduler.wg.Done()

			if jobEntry.interval > 0 {
				scheduler.runInterval(ctx, jobEntry)
			} else {
				scheduler.runDaily(ctx, jobEntry)
			}
		}(jobEntry)
	}
}

// Stop waits for all job goroutines to exit (best called during app shutdown).
// A job run already in flight finishes before Stop returns.
func (scheduler *Scheduler) Stop() {
	scheduler.stopOnce.Do(func() { close(scheduler.stopCh) })
	scheduler.wg.Wait()
}

func (scheduler *Scheduler) runInterval(ctx context.Context, jobEntry entry) {
	ticker := time.NewTicker(jobEntry.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-scheduler.stopCh:
			return
		case <-ticker.C:
			scheduler.runJob(ctx, jobEntry.job)
		}
	}
}

func (scheduler *Scheduler) runDaily(ctx context.Context, jobEntry entry) {
	for {
		timer := time.NewTimer(time.Until(nextDaily(timeNow(), jobEntry.dailyAt, jobEntry.location)))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-scheduler.stopCh:
			timer.Stop()
			return
		case <-timer.C:
			scheduler.runJob(ctx, jobEntry.job)
		}
	}
}

// nextDaily returns the next occurrence of hour o'clock in location,
// strictly after now.
func nextDaily(now time.Time, hour int, location *time.Location) time.Time {
	local := now.In(location)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (scheduler *Scheduler) runJob(ctx context.Context, job Job) {
	// Handle panic recovery to prevent the scheduler goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			scheduler.logger.Error().
				Str(loggers.FieldJob, job.Name()).
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("job panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricJobRunsTotal.WithLabelValues(job.Name(), svcErr.Code).Inc()
		}
	}()

	jobCtx := scheduler.logger.With().
		Str(loggers.FieldJob, job.Name()).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	startedAt := timeNow()
	err := job.Run(jobCtx)
	elapsed := timeNow().Sub(startedAt)

	if err != nil {
		code := errorCode(err)
		loggers.Ctx(jobCtx).Error().
			Err(err).
			Str(loggers.FieldErrorCode, code).
			Dur(loggers.FieldDuration, elapsed).
			Msg("job run failed")
		metricJobRunsTotal.WithLabelValues(job.Name(), code).Inc()
		return
	}

	loggers.Ctx(jobCtx).Info().
		Dur(loggers.FieldDuration, elapsed).
		Msg("job run completed")
	metricJobRunsTotal.WithLabelValues(job.Name(), metrics.ValueNoError).Inc()
}

func errorCode(err error) string {
	if svcErr, ok := svcerrors.As(err); ok {
		return svcErr.Code
	}
	return svcerrors.NewInternalErrorUndefined(err).Code
}
