package errorsummary_test

import (
	"testing"

	"telemetry-analytics/internal/errorsummary"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_OnlyFirstStackLineCounts(t *testing.T) {
	t.Parallel()

	a := errorsummary.Fingerprint("null deref", "at sync.go:12\nat main.go:4")
	b := errorsummary.Fingerprint("null deref", "at sync.go:12\nat worker.go:99")
	c := errorsummary.Fingerprint("null deref", "at other.go:1\nat main.go:4")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFingerprint_MessageDistinguishes(t *testing.T) {
	t.Parallel()

	a := errorsummary.Fingerprint("timeout", "at sync.go:12")
	b := errorsummary.Fingerprint("refused", "at sync.go:12")

	assert.NotEqual(t, a, b)
}

func TestFingerprint_DeterministicHexFormat(t *testing.T) {
	t.Parallel()

	a := errorsummary.Fingerprint("crash", "")
	b := errorsummary.Fingerprint("crash", "")

	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", a)
}

func TestFingerprint_StackWhitespaceTrimmed(t *testing.T) {
	t.Parallel()

	a := errorsummary.Fingerprint("crash", "  at sync.go:12  \nat main.go:4")
	b := errorsummary.Fingerprint("crash", "at sync.go:12")

	assert.Equal(t, a, b)
}
