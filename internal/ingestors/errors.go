package ingestors

import (
	"fmt"

	"telemetry-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "ING_1000"

	codeInternalRawStoreFailed    = "ING_9000"
	codeInternalDenormalizeFailed = "ING_9001"
	codeInternalErrorStreamFailed = "ING_9002"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errValidationFailedAt returns a validation error scoped to one record
// of a batch.
func errValidationFailedAt(index int, msg string) *svcerrors.ServiceError {
	return errValidationFailed(fmt.Sprintf("item at index %d: %s", index, msg), nil)
}

// errInternalRawStoreFailed returns an error when a raw record write fails.
func errInternalRawStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRawStoreFailed, fmt.Errorf("rawStoreFailed: %w", cause))
}

// errInternalDenormalizeFailed returns an error when a denormalized copy write fails.
func errInternalDenormalizeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDenormalizeFailed, fmt.Errorf("denormalizeFailed: %w", cause))
}

// errInternalErrorStreamFailed returns an error when publishing to the error stream fails.
func errInternalErrorStreamFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalErrorStreamFailed, fmt.Errorf("errorStreamFailed: %w", cause))
}
