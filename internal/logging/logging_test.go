package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/organizer-labs/file-organizer/internal/config"
)

func TestSetup_DevIsVerbose(t *testing.T) {
	logger := Setup(config.ModeDev)
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("dev mode should enable debug logging")
	}
}

func TestSetup_ReleaseIsQuiet(t *testing.T) {
	logger := Setup(config.ModeRelease)
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("release mode should not enable info logging")
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("release mode should still log warnings")
	}
}
