package logx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		name                        string
		veryVerbose, verbose, quiet bool
		want                        slog.Level
	}{
		{"very verbose", true, false, false, slog.LevelDebug},
		{"verbose beats quiet", false, true, true, slog.LevelInfo},
		{"quiet", false, false, true, slog.LevelError},
		{"default", false, false, false, slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelFromFlags(tt.veryVerbose, tt.verbose, tt.quiet); got != tt.want {
				t.Errorf("LevelFromFlags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logger := Setup(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}
