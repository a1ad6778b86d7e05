package sidecar

import (
	"fmt"
	"os"
	"time"
)

// appendDiagnostic appends one outcome line to the sidecar log at
// logPath, creating the file if absent. The write is best-effort: open
// and write failures are swallowed, and the handle is closed regardless.
// Lost diagnostics are acceptable; a failed application start is not.
func appendDiagnostic(logPath string, outcome LaunchOutcome) {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = fmt.Fprintln(f, outcome.LogLine(time.Now()))
}
