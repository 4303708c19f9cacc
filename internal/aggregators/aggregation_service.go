package aggregators

import (
	"context"
	"sort"
	"time"

	"telemetry-analytics/internal/models"
	"telemetry-analytics/internal/retention"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/ulid"
	"telemetry-analytics/internal/stores"
)

// AggregationService runs one aggregation pass: it fetches every raw
// record in the most recent window, groups records by name, computes
// summary statistics per group and writes one rollup per group.
//
// Overlapping runs are not locked out. A double run over the same window
// produces duplicate-but-equivalent rollups, which downstream report
// merging absorbs; this redundancy is accepted instead of a distributed
// lease.
//
//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate processes the window [now-windowSize, now). Any error
	// aborts the remaining writes of the run; the raw records stay in
	// place for the retention sweeper.
	Aggregate(ctx context.Context, now time.Time) error
}

type aggregationService struct {
	source      RecordSource
	rollupStore stores.RollupStore
	sweeper     retention.Sweeper // trailing step; may be nil
	windowSize  time.Duration
	period      models.Period
}

// NewAggregationService wires an aggregation pass over one raw
// collection. sweeper may be nil when retention runs on its own
// schedule instead of trailing the aggregation run.
func NewAggregationService(source RecordSource, rollupStore stores.RollupStore, sweeper retention.Sweeper, windowSize time.Duration, period models.Period) AggregationService {
	return &aggregationService{
		source:      source,
		rollupStore: rollupStore,
		sweeper:     sweeper,
		windowSize:  windowSize,
		period:      period,
	}
}

func (s *aggregationService) Aggregate(ctx context.Context, now time.Time) error {
	logger := loggers.Ctx(ctx)

	windowEnd := now.UTC()
	windowStart := windowEnd.Add(-s.windowSize)

	samples, err := s.source.FetchWindow(ctx, windowStart, windowEnd)
	if err != nil {
		return errInternalRecordFetchFailed(err)
	}

	// An empty window writes nothing, which keeps re-runs idempotent.
	if len(samples) == 0 {
		logger.Debug().
			Time(loggers.FieldWindowStart, windowStart).
			Time(loggers.FieldWindowEnd, windowEnd).
			Msg("empty aggregation window, skipping")
		return s.trailingSweep(ctx)
	}

	groups := groupByName(samples)

	// Deterministic write order across runs.
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		group := groups[name]
		rollup := buildRollup(name, group, s.period, windowStart, windowEnd)
		if err := s.rollupStore.Append(ctx, rollup); err != nil {
			// Abort remaining writes; already-written rollups stay. The next
			// run covers a fresh window, so nothing is double-counted.
			return errInternalRollupStoreFailed(err)
		}
		metricRollupsCreatedTotal.WithLabelValues(string(s.period), s.period.BucketID(windowStart)).Inc()
	}

	logger.Info().
		Str(loggers.FieldWindow, s.period.FormatWindowStart(windowStart)).
		Time(loggers.FieldWindowStart, windowStart).
		Time(loggers.FieldWindowEnd, windowEnd).
		Int("groups", len(names)).
		Int("samples", len(samples)).
		Msg("aggregation window rolled up")

	return s.trailingSweep(ctx)
}

func (s *aggregationService) trailingSweep(ctx context.Context) error {
	if s.sweeper == nil {
		return nil
	}
	if err := s.sweeper.Sweep(ctx); err != nil {
		return errInternalRetentionSweepFailed(err)
	}
	return nil
}

func groupByName(samples []Sample) map[string][]Sample {
	groups := make(map[string][]Sample)
	for _, sample := range samples {
		groups[sample.Name] = append(groups[sample.Name], sample)
	}
	return groups
}

func buildRollup(name string, group []Sample, period models.Period, start, end time.Time) *models.Rollup {
	values := make([]float64, 0, len(group))
	platforms := make(map[string]int64)
	appVersions := make(map[string]int64)
	for _, sample := range group {
		values = append(values, sample.Value)
		if sample.Platform != "" {
			platforms[sample.Platform]++
		}
		if sample.AppVersion != "" {
			appVersions[sample.AppVersion]++
		}
	}

	summary := Summarize(values)

	return &models.Rollup{
		ID:          ulid.NewULID(),
		Name:        name,
		Period:      period,
		StartTime:   start,
		EndTime:     end,
		Count:       summary.Count,
		Average:     summary.Average,
		Min:         summary.Min,
		Max:         summary.Max,
		P50:         summary.P50,
		P90:         summary.P90,
		P95:         summary.P95,
		P99:         summary.P99,
		Platforms:   platforms,
		AppVersions: appVersions,
	}
}
