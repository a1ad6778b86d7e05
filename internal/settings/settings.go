package settings

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Theme values accepted by the shell.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Settings holds the user-adjustable shell preferences.
type Settings struct {
	Theme              string `yaml:"theme"`
	ConfirmBeforeApply bool   `yaml:"confirm_before_apply"`
	DefaultScanRoot    string `yaml:"default_scan_root"`
	ShowHiddenFiles    bool   `yaml:"show_hidden_files"`
}

// Default returns the settings used when no settings.yaml exists.
func Default() Settings {
	return Settings{
		Theme:              ThemeSystem,
		ConfirmBeforeApply: true,
	}
}

// Load reads settings.yaml at path, validates it against the schema, and
// returns the parsed settings. A missing file yields defaults with no
// error. An unreadable, unparsable, or schema-invalid file yields
// defaults plus an error describing the problem, so callers can report
// it without aborting.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading settings %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return Default(), fmt.Errorf("validating settings %s: %w", path, err)
	}
	if !result.Valid {
		return Default(), fmt.Errorf("settings %s: %s", path, result.Summary())
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}
