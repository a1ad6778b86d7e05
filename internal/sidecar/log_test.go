package sidecar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendDiagnostic_AppendsNotTruncates(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "sidecar.log")

	appendDiagnostic(logPath, LaunchOutcome{Path: "/a", Cause: CauseNone, PID: 1})
	appendDiagnostic(logPath, LaunchOutcome{Cause: CauseUnresolvedDir})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "result=ok") {
		t.Errorf("first line should record success, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "result=unresolved-dir") {
		t.Errorf("second line should record the unresolved dir, got %q", lines[1])
	}
}

func TestAppendDiagnostic_SwallowsOpenFailure(t *testing.T) {
	// A directory path cannot be opened as a file; must not panic.
	appendDiagnostic(t.TempDir(), LaunchOutcome{Cause: CauseUnresolvedDir})
}
