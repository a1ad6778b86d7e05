package platform

import (
	"os"
	"runtime"
)

// Chmod sets permissions on a file or directory. On Windows this is a
// no-op: there are no Unix-style permission bits to set, and the data
// directory inherits its ACLs from the user profile.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
