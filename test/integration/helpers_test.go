//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// setupDataDir points the application data directory at an isolated temp
// directory for the duration of the test.
func setupDataDir(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	t.Setenv("FILE_ORGANIZER_DATA", dataDir)
	return dataDir
}

// installFakeBackend writes a minimal backend binary next to the current
// (test) executable, where the locator expects it, and removes it when
// the test ends.
func installFakeBackend(t *testing.T, name string) string {
	t.Helper()
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}
	path := filepath.Join(filepath.Dir(exe), name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("writing fake backend: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })
	return path
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}
