// Package logging configures the process-wide structured logger.
// Interactive dev builds get verbose debug output; release builds keep
// in-process logging quiet, since launch diagnostics go to sidecar.log.
package logging

import (
	"log/slog"
	"os"

	"github.com/organizer-labs/file-organizer/internal/config"
)

// Setup installs the slog default handler for the given deployment mode
// and returns the logger. Called once at startup.
func Setup(mode config.Mode) *slog.Logger {
	level := slog.LevelWarn
	if mode == config.ModeDev {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
