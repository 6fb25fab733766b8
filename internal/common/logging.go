package common

import (
	"log/slog"
	"os"
)

// NewLogger builds the run-scoped JSON logger every CLI action passes down
// the pipeline. No package keeps a global logger.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
