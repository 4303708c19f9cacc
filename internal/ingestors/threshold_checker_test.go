package ingestors_test

import (
	"context"
	"testing"
	"time"

	"telemetry-analytics/internal/ingestors"
	"telemetry-analytics/internal/models"
	storemocks "telemetry-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var checkerRules = []ingestors.ThresholdRule{
	{Pattern: "api_call", ThresholdMs: 5000},
	{Pattern: "screen_load", ThresholdMs: 3000},
}

func TestCheck_BreachRecorded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	breachStore := storemocks.NewMockBreachStore(ctrl)
	checker := ingestors.NewThresholdChecker(checkerRules, breachStore)

	var breach *models.ThresholdBreach
	breachStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.ThresholdBreach) error {
			breach = b
			return nil
		})

	record := &models.MetricRecord{
		Name:      "api_call",
		Value:     5001,
		Unit:      models.UnitMilliseconds,
		Timestamp: time.Now().UTC(),
		Platform:  "ios",
	}
	breached := checker.Check(context.Background(), record)

	assert.True(t, breached)
	require.NotNil(t, breach)
	assert.Equal(t, "api_call", breach.Metric)
	assert.Equal(t, 5001.0, breach.Value)
	assert.Equal(t, 5000.0, breach.Threshold)
}

func TestCheck_ExactThresholdIsNoBreach(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	breachStore := storemocks.NewMockBreachStore(ctrl)
	checker := ingestors.NewThresholdChecker(checkerRules, breachStore)

	record := &models.MetricRecord{Name: "api_call", Value: 5000}
	breached := checker.Check(context.Background(), record)

	assert.False(t, breached)
}

func TestCheck_SubstringMatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	breachStore := storemocks.NewMockBreachStore(ctrl)
	checker := ingestors.NewThresholdChecker(checkerRules, breachStore)

	breachStore.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	// "api_call" is contained in the metric name.
	record := &models.MetricRecord{Name: "my_api_call_checkout", Value: 6000}
	breached := checker.Check(context.Background(), record)

	assert.True(t, breached)
}

func TestCheck_FirstMatchingRuleWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	breachStore := storemocks.NewMockBreachStore(ctrl)
	rules := []ingestors.ThresholdRule{
		{Pattern: "call", ThresholdMs: 10000},
		{Pattern: "api_call", ThresholdMs: 5000},
	}
	checker := ingestors.NewThresholdChecker(rules, breachStore)

	// Matches the first rule (threshold 10000), so 6000 is no breach even
	// though the second rule would fire. Scanning stops at the first match.
	record := &models.MetricRecord{Name: "api_call", Value: 6000}
	breached := checker.Check(context.Background(), record)

	assert.False(t, breached)
}

func TestCheck_NoMatchingRule(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	breachStore := storemocks.NewMockBreachStore(ctrl)
	checker := ingestors.NewThresholdChecker(checkerRules, breachStore)

	record := &models.MetricRecord{Name: "db_query", Value: 999999}
	breached := checker.Check(context.Background(), record)

	assert.False(t, breached)
}

func TestCheck_StoreFailureStillReportsBreach(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	breachStore := storemocks.NewMockBreachStore(ctrl)
	checker := ingestors.NewThresholdChecker(checkerRules, breachStore)

	breachStore.EXPECT().Append(gomock.Any(), gomock.Any()).Return(assert.AnError)

	record := &models.MetricRecord{Name: "api_call", Value: 9000}
	breached := checker.Check(context.Background(), record)

	// Persistence is best-effort; the breach verdict stands.
	assert.True(t, breached)
}
