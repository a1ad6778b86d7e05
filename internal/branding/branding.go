// Package branding provides compile-time identity values for the shell.
//
// The values live in branding.yaml next to this file and are baked into
// the binary with go:embed, so the backend binary name and listen address
// stay in lockstep with the packaged application bundle.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	BackendBinary string `yaml:"backend_binary"`
	BackendAddr   string `yaml:"backend_addr"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "file-organizer",
			DisplayName:   "File Organizer",
			Description:   "Desktop shell for organizing, deduplicating, and renaming local files",
			HomeDir:       "file-organizer",
			EnvPrefix:     "FILE_ORGANIZER",
			GoModule:      "github.com/organizer-labs/file-organizer",
			BackendBinary: "file-organizer-backend",
			BackendAddr:   "127.0.0.1:8000",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "file-organizer").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "File Organizer").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the application directory name under the per-user
// config root (e.g., "file-organizer").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FILE_ORGANIZER").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by packaging scripts — not
// consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// BackendBinary returns the base name of the bundled backend sidecar
// executable, without any platform suffix.
func BackendBinary() string { load(); return defaults.BackendBinary }

// BackendAddr returns the address the backend sidecar is expected to
// listen on (e.g., "127.0.0.1:8000").
func BackendAddr() string { load(); return defaults.BackendAddr }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("DATA") → "FILE_ORGANIZER_DATA".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
