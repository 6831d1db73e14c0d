//go:build !debug

package assert

import "testing"

func TestThatPassesThroughCondition(t *testing.T) {
	if !That(true, "never shown") {
		t.Error("That(true) = false, want true")
	}
	if That(false, "count %d", 1) {
		t.Error("That(false) = true, want false in release builds")
	}
}
