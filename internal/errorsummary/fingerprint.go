package errorsummary

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint derives the stable identity of an error from its message
// and the first line of its stack trace. Two reports with the same
// message raised from the same frame collapse into one summary even
// when the rest of the stack differs.
func Fingerprint(message, stack string) string {
	first := firstStackLine(stack)
	sum := xxhash.Sum64String(message + "\n" + first)
	return fmt.Sprintf("%016x", sum)
}

func firstStackLine(stack string) string {
	if stack == "" {
		return ""
	}
	if i := strings.IndexByte(stack, '\n'); i >= 0 {
		stack = stack[:i]
	}
	return strings.TrimSpace(stack)
}
