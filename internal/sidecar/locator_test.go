package sidecar

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestBinaryName(t *testing.T) {
	name := BinaryName()
	if !strings.HasPrefix(name, "file-organizer-backend") {
		t.Errorf("unexpected binary name %q", name)
	}
	if runtime.GOOS == "windows" && !strings.HasSuffix(name, ".exe") {
		t.Errorf("expected .exe suffix on windows, got %q", name)
	}
	if runtime.GOOS != "windows" && strings.HasSuffix(name, ".exe") {
		t.Errorf("unexpected .exe suffix on %s: %q", runtime.GOOS, name)
	}
}

func TestResolvePath(t *testing.T) {
	path, ok := ResolvePath()
	if !ok {
		t.Fatal("expected ResolvePath to succeed in test binary")
	}

	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}
	expected := filepath.Join(filepath.Dir(exe), BinaryName())
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
