package cli

import (
	"github.com/organizer-labs/file-organizer/internal/appdir"
	"github.com/organizer-labs/file-organizer/internal/branding"
	"github.com/organizer-labs/file-organizer/internal/config"
	"github.com/organizer-labs/file-organizer/internal/logging"
	"github.com/organizer-labs/file-organizer/internal/settings"
	"github.com/organizer-labs/file-organizer/internal/sidecar"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(launchCmd)
}

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Run the application startup sequence",
	Long: `Run the application startup sequence, invoked once per application
start by the desktop shell.

In release builds this spawns the bundled backend sidecar next to the
current executable and records the outcome to sidecar.log in the
application data directory. In dev builds the spawn is skipped (the
backend is started independently by the developer) and verbose logging
is enabled instead. Launch always exits successfully: a backend that
failed to start surfaces later as an unreachable local endpoint, not as
a startup failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		launch(deployMode)
		return nil
	},
}

// launch performs the startup sequence for the given deployment mode and
// returns the sidecar outcome, or nil when the mode skips the bootstrap.
// It never fails: every fallible step degrades to a log line.
func launch(mode config.Mode) *sidecar.LaunchOutcome {
	logger := logging.Setup(mode)
	logger.Debug("starting shell", "version", buildVersion, "mode", mode.String())

	config.Load()

	if _, err := appdir.EnsureDataDir(); err != nil {
		logger.Warn("data directory unavailable", "error", err)
	}

	if path, err := appdir.SettingsPath(); err == nil {
		s, err := settings.Load(path)
		if err != nil {
			logger.Warn("settings ignored", "error", err)
		}
		logger.Debug("settings loaded", "theme", s.Theme)
	}

	if mode != config.ModeRelease {
		logger.Debug("dev mode: backend sidecar not spawned",
			"expected_addr", branding.BackendAddr())
		return nil
	}

	outcome := sidecar.Bootstrap(appdir.SidecarLogPath())
	if outcome.OK() {
		logger.Debug("backend sidecar spawned", "path", outcome.Path, "pid", outcome.PID)
	} else {
		logger.Warn("backend sidecar not started",
			"cause", outcome.Cause.String(), "error", outcome.Err)
	}
	return &outcome
}
