package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion failed: expected dev, got %s", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-10-18"
	defer func() { Version, GitCommit, BuildDate = "dev", "unknown", "unknown" }()

	expected := "1.2.0 (commit abc123, built 2026-10-18)"
	if got := GetFullVersion(); got != expected {
		t.Errorf("GetFullVersion failed: expected %s, got %s", expected, got)
	}
}
