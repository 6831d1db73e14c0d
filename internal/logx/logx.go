// Package logx configures the process-wide slog logger for the CLI.
package logx

import (
	"io"
	"log/slog"
)

// LevelFromFlags picks a log level from the command line verbosity flags.
// veryVerbose wins over verbose, which wins over quiet; with no flag set the
// level is warn.
func LevelFromFlags(veryVerbose, verbose, quiet bool) slog.Level {
	switch {
	case veryVerbose:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Setup installs a text handler writing to w at the given level as the
// default logger and returns it.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
