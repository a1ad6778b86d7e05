package cli

import (
	"encoding/json"
	"fmt"

	"github.com/organizer-labs/file-organizer/internal/branding"
	"github.com/organizer-labs/file-organizer/internal/version"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		normalized, err := version.Normalize(buildVersion)
		if err != nil {
			// An unparsable ldflags version is a packaging bug, but the
			// command still prints what it was given.
			normalized = buildVersion
		}

		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), normalized)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": normalized,
				"commit":  buildCommit,
				"date":    buildDate,
				"mode":    deployMode.String(),
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s, mode: %s)\n",
			branding.CLIName(), normalized, buildCommit, buildDate, deployMode.String())
		return nil
	},
}
