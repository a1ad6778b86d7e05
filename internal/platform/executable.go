package platform

import (
	"os"
	"runtime"
	"strings"
)

// IsExecutable reports whether the file at path exists and can plausibly
// be executed by the current user. On Windows the check is by extension;
// elsewhere any execute permission bit counts.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		name := strings.ToLower(info.Name())
		return strings.HasSuffix(name, ".exe") || strings.HasSuffix(name, ".bat") || strings.HasSuffix(name, ".cmd")
	}
	return info.Mode().Perm()&0111 != 0
}
