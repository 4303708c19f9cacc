package errorsummary

import (
	"fmt"

	"telemetry-analytics/internal/shared/svcerrors"
)

const (
	codeInternalSummaryStoreFailed = "ERS_9000"
)

// errInternalSummaryStoreFailed returns an error when the summary transaction fails.
func errInternalSummaryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryStoreFailed, fmt.Errorf("summaryStoreFailed: %w", cause))
}
