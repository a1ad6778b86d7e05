package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckDataDir(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("FILE_ORGANIZER_DATA", dataDir)

	var buf bytes.Buffer
	checkDataDir(&buf)
	if !strings.Contains(buf.String(), "[ OK ]") {
		t.Errorf("expected OK for existing data dir, got %q", buf.String())
	}

	buf.Reset()
	t.Setenv("FILE_ORGANIZER_DATA", filepath.Join(dataDir, "missing"))
	checkDataDir(&buf)
	if !strings.Contains(buf.String(), "[MISS]") {
		t.Errorf("expected MISS for absent data dir, got %q", buf.String())
	}
}

func TestCheckBackendBinary_Missing(t *testing.T) {
	// The test binary has no sibling backend.
	var buf bytes.Buffer
	checkBackendBinary(&buf)
	if !strings.Contains(buf.String(), "[MISS]") {
		t.Errorf("expected MISS, got %q", buf.String())
	}
}

func TestCheckSettingsFile(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("FILE_ORGANIZER_DATA", dataDir)

	var buf bytes.Buffer
	checkSettingsFile(&buf)
	if !strings.Contains(buf.String(), "defaults in use") {
		t.Errorf("expected defaults note for absent settings, got %q", buf.String())
	}

	if err := os.WriteFile(filepath.Join(dataDir, "settings.yaml"), []byte("theme: neon\n"), 0644); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	checkSettingsFile(&buf)
	if !strings.Contains(buf.String(), "[WARN]") {
		t.Errorf("expected WARN for invalid settings, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "/theme") {
		t.Errorf("expected the offending path in output, got %q", buf.String())
	}
}

func TestTailSidecarLog(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("FILE_ORGANIZER_DATA", dataDir)

	var buf bytes.Buffer
	tailSidecarLog(&buf, 2)
	if !strings.Contains(buf.String(), "[MISS]") {
		t.Errorf("expected MISS for absent log, got %q", buf.String())
	}

	log := "line1\nline2\nline3\n"
	if err := os.WriteFile(filepath.Join(dataDir, "sidecar.log"), []byte(log), 0644); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	tailSidecarLog(&buf, 2)
	out := buf.String()
	if strings.Contains(out, "line1") {
		t.Errorf("expected only the last 2 lines, got %q", out)
	}
	if !strings.Contains(out, "line2") || !strings.Contains(out, "line3") {
		t.Errorf("expected last 2 lines, got %q", out)
	}
}
