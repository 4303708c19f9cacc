package aggregators

import (
	"fmt"

	"telemetry-analytics/internal/shared/svcerrors"
)

const (
	codeInternalRecordFetchFailed    = "AGG_9000"
	codeInternalRollupStoreFailed    = "AGG_9001"
	codeInternalRetentionSweepFailed = "AGG_9002"
)

// errInternalRecordFetchFailed returns an error when the raw window query fails.
func errInternalRecordFetchFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordFetchFailed, fmt.Errorf("recordFetchFailed: %w", cause))
}

// errInternalRollupStoreFailed returns an error when a rollup write fails.
func errInternalRollupStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRollupStoreFailed, fmt.Errorf("rollupStoreFailed: %w", cause))
}

// errInternalRetentionSweepFailed returns an error when the trailing sweep fails.
func errInternalRetentionSweepFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRetentionSweepFailed, fmt.Errorf("retentionSweepFailed: %w", cause))
}
