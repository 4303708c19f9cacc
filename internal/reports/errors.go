package reports

import (
	"fmt"

	"telemetry-analytics/internal/shared/svcerrors"
)

const (
	codeInternalRollupFetchFailed = "RPT_9000"
	codeInternalReportStoreFailed = "RPT_9001"
)

// errInternalRollupFetchFailed returns an error when the rollup window query fails.
func errInternalRollupFetchFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRollupFetchFailed, fmt.Errorf("rollupFetchFailed: %w", cause))
}

// errInternalReportStoreFailed returns an error when the report write fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
