package cli

import (
	"github.com/organizer-labs/file-organizer/internal/branding"
	"github.com/organizer-labs/file-organizer/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
	deployMode   config.Mode
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` is a desktop application for organizing local files.
This binary is its startup supervisor: the launch command brings up the
bundled backend sidecar, and the remaining commands inspect and configure
the installation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
// The deployment mode is resolved exactly once, here, before any command
// runs.
func Execute(version, commit, date, mode string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	deployMode = config.ResolveMode(mode)
	return rootCmd.Execute()
}
