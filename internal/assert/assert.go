// Package assert reports broken internal contracts.
//
// Parameter ranges are enforced before geometry is generated, so a failed
// assertion always means a caller bug. Builds tagged "debug" panic on the
// first violation; every other build logs it and lets the caller fall back to
// the nearest valid configuration.
package assert

import (
	"fmt"
	"log/slog"
)

// That returns cond. When cond is false it panics in debug builds and logs a
// warning otherwise.
func That(cond bool, format string, args ...any) bool {
	if cond {
		return true
	}
	msg := fmt.Sprintf(format, args...)
	if panicOnViolation {
		panic("assertion failed: " + msg)
	}
	slog.Warn("contract violation", "detail", msg)
	return false
}
