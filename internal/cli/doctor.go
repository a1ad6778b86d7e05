package cli

import (
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/organizer-labs/file-organizer/internal/appdir"
	"github.com/organizer-labs/file-organizer/internal/branding"
	"github.com/organizer-labs/file-organizer/internal/platform"
	"github.com/organizer-labs/file-organizer/internal/settings"
	"github.com/organizer-labs/file-organizer/internal/sidecar"
	"github.com/spf13/cobra"
)

var (
	checkBackend  bool
	checkData     bool
	checkSettings bool
	tailLog       bool
	probeBackend  bool
)

// probeTimeout bounds the doctor's backend reachability dial.
const probeTimeout = 2 * time.Second

func init() {
	doctorCmd.Flags().BoolVar(&checkBackend, "check-backend", false, "Verify the backend binary next to the shell executable")
	doctorCmd.Flags().BoolVar(&checkData, "check-data", false, "Verify the application data directory")
	doctorCmd.Flags().BoolVar(&checkSettings, "check-settings", false, "Validate settings.yaml against its schema")
	doctorCmd.Flags().BoolVar(&tailLog, "tail-log", false, "Show the last sidecar.log entries")
	doctorCmd.Flags().BoolVar(&probeBackend, "probe", false, "Probe the backend listen address over TCP")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the File Organizer installation",
	Long: `Run diagnostic checks on the File Organizer installation.

Without flags, all filesystem checks run. The --probe check dials the
backend's expected listen address and only runs when requested: the
startup sequence itself never verifies backend reachability, so the
probe reflects the current moment, not the launch outcome.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		anyFlag := checkBackend || checkData || checkSettings || tailLog || probeBackend
		w := cmd.OutOrStdout()

		if !anyFlag || checkData {
			checkDataDir(w)
		}
		if !anyFlag || checkBackend {
			checkBackendBinary(w)
		}
		if !anyFlag || checkSettings {
			checkSettingsFile(w)
		}
		if !anyFlag || tailLog {
			tailSidecarLog(w, 5)
		}
		if probeBackend {
			probeBackendAddr(w)
		}
		return nil
	},
}

// checkDataDir reports on the application data directory.
func checkDataDir(w io.Writer) {
	fmt.Fprintln(w, "Data directory:")
	dir, err := appdir.DataDir()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] cannot resolve: %v\n", err)
		return
	}
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist (created on first launch)\n", dir)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", dir, err)
		return
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s is not a directory\n", dir)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s (permissions %o)\n", dir, info.Mode().Perm())
}

// checkBackendBinary reports on the sidecar binary expected next to the
// current executable.
func checkBackendBinary(w io.Writer) {
	fmt.Fprintln(w, "Backend binary:")
	path, ok := sidecar.ResolvePath()
	if !ok {
		fmt.Fprintln(w, "  [FAIL] cannot resolve the shell executable directory")
		return
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		return
	}
	if !platform.IsExecutable(path) {
		fmt.Fprintf(w, "  [WARN] %s exists but is not executable\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
}

// checkSettingsFile validates settings.yaml if present.
func checkSettingsFile(w io.Writer) {
	fmt.Fprintln(w, "Settings:")
	path, err := appdir.SettingsPath()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] cannot resolve settings path: %v\n", err)
		return
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [ OK ] %s absent, defaults in use\n", path)
		return
	}
	result, err := settings.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if !result.Valid {
		fmt.Fprintf(w, "  [WARN] %s invalid, defaults in use:\n", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "         %s: %s\n", issue.Path, issue.Message)
		}
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
}

// tailSidecarLog prints the last n lines of sidecar.log.
func tailSidecarLog(w io.Writer, n int) {
	fmt.Fprintln(w, "Sidecar log:")
	path := appdir.SidecarLogPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist (no release launch recorded)\n", path)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for _, line := range lines {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

// probeBackendAddr dials the backend's expected listen address once.
func probeBackendAddr(w io.Writer) {
	addr := branding.BackendAddr()
	fmt.Fprintln(w, "Backend probe:")
	conn, err := net.DialTimeout("tcp", addr, probeTimeout)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s not reachable: %v\n", addr, err)
		return
	}
	conn.Close()
	fmt.Fprintf(w, "  [ OK ] %s reachable\n", addr)
}
