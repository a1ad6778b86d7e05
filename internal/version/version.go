// Package version normalizes the build-time version string for display
// and diagnostics.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsDev reports whether the version string denotes an unversioned
// development build.
func IsDev(v string) bool {
	return v == "" || v == "dev"
}

// Normalize parses v as semver (tolerating a leading "v") and returns
// its canonical form. Dev builds pass through unchanged.
func Normalize(v string) (string, error) {
	if IsDev(v) {
		return "dev", nil
	}
	parsed, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", v, err)
	}
	return parsed.String(), nil
}
