// Package appdir resolves the per-user application data directory used
// for configuration, settings, and diagnostic output.
package appdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/organizer-labs/file-organizer/internal/branding"
	"github.com/organizer-labs/file-organizer/internal/platform"
)

// File name constants under the data directory.
const (
	SidecarLogFile = "sidecar.log"
	SettingsFile   = "settings.yaml"
)

// DirPermNormal is the permission mode for created data directories.
const DirPermNormal os.FileMode = 0755

// DataDir returns the path to the application data directory.
// It checks the FILE_ORGANIZER_DATA environment variable first,
// then falls back to <user config dir>/file-organizer.
func DataDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("DATA")); v != "" {
		return v, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(cfg, branding.HomeDir()), nil
}

// EnsureDataDir creates the data directory if it does not exist and
// returns its path.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, DirPermNormal); err != nil {
		return "", fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	// MkdirAll applies the umask; normalize the perms of the leaf dir.
	if err := platform.Chmod(dir, DirPermNormal); err != nil {
		return "", fmt.Errorf("setting data directory permissions: %w", err)
	}
	return dir, nil
}

// SidecarLogPath returns the path to the sidecar diagnostic log.
// If the data directory cannot be determined, it falls back to the
// current working directory so diagnostics still land somewhere.
func SidecarLogPath() string {
	dir, err := DataDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, SidecarLogFile)
}

// SettingsPath returns the path to settings.yaml within the data directory.
func SettingsPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFile), nil
}
