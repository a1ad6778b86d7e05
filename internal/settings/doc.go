// Package settings loads the shell's user settings from settings.yaml in
// the application data directory and validates them against an embedded
// JSON Schema. Settings are advisory: a missing or invalid file degrades
// to defaults and never blocks launch.
package settings
