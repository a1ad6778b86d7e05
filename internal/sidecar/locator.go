package sidecar

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/organizer-labs/file-organizer/internal/branding"
)

// BinaryName returns the platform-appropriate file name of the backend
// sidecar binary ("file-organizer-backend", with ".exe" on Windows).
func BinaryName() string {
	name := branding.BackendBinary()
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return name
}

// ResolvePath returns the expected path of the backend binary: the
// directory containing the current executable, joined with BinaryName.
// It reports ok=false when the executable path or its parent directory
// cannot be determined; that is a soft condition, not an error.
func ResolvePath() (path string, ok bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	dir := filepath.Dir(exe)
	if dir == "" || dir == exe {
		return "", false
	}
	return filepath.Join(dir, BinaryName()), true
}
