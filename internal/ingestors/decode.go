package ingestors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// decodeSingleOrBatch reads the request body (bounded) and unmarshals it
// into *[]T, accepting either a single JSON object or a JSON array.
func decodeSingleOrBatch[T any](r io.Reader, out *[]T) error {
	if r == nil {
		return errValidationFailed("empty request body", nil)
	}

	buf, err := readWithLimit(r, maxBodyBytes)
	if err != nil {
		return err
	}

	trimmed := bytes.TrimLeft(buf, " \t\r\n")
	if len(trimmed) == 0 {
		return errValidationFailed("empty request body", nil)
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return errValidationFailed("invalid json", err)
		}
		return nil
	}

	var single T
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return errValidationFailed("invalid json", err)
	}
	*out = []T{single}
	return nil
}

func validateBatchSize(n int) error {
	if n == 0 {
		return errValidationFailed("batch cannot be empty", nil)
	}
	if n > maxBatchSize {
		return errValidationFailed(fmt.Sprintf("batch too large: must be <= %d records", maxBatchSize), nil)
	}
	return nil
}

// readWithLimit reads up to max+1 bytes from r and rejects bodies that
// exceed max.
func readWithLimit(r io.Reader, max int) ([]byte, error) {
	limitedReader := io.LimitReader(r, int64(max+1))
	buf, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > max {
		return nil, errValidationFailed("body too large: must be <= 2MB", nil)
	}
	return buf, nil
}
