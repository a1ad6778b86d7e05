package sidecar

import (
	"fmt"
	"time"
)

// Cause categorizes a failed launch attempt.
type Cause int

const (
	// CauseNone means the OS accepted the spawn request.
	CauseNone Cause = iota
	// CauseUnresolvedDir means the shell's own executable directory could
	// not be determined, so no backend path existed to spawn.
	CauseUnresolvedDir
	// CauseSpawn means the OS refused to start the backend process
	// (missing binary, permissions, and similar).
	CauseSpawn
)

// String returns a short identifier for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "ok"
	case CauseUnresolvedDir:
		return "unresolved-dir"
	case CauseSpawn:
		return "spawn-failed"
	default:
		return "unknown"
	}
}

// LaunchOutcome is the immutable record of one backend launch attempt.
// Exactly one is produced per application start.
type LaunchOutcome struct {
	// Path is the backend binary path that was attempted. Empty when the
	// executable directory could not be resolved.
	Path string
	// Cause is CauseNone on success, otherwise the failure category.
	Cause Cause
	// Err is the underlying OS error for CauseSpawn; nil otherwise.
	Err error
	// PID is the spawned process ID on success; zero otherwise.
	PID int
}

// OK reports whether the OS accepted the spawn request.
func (o LaunchOutcome) OK() bool {
	return o.Cause == CauseNone
}

// LogLine renders the outcome as a single diagnostic line, timestamped
// with now in RFC 3339.
func (o LaunchOutcome) LogLine(now time.Time) string {
	ts := now.Format(time.RFC3339)
	path := o.Path
	if path == "" {
		path = "<unresolved>"
	}
	switch o.Cause {
	case CauseNone:
		return fmt.Sprintf("%s sidecar spawn: path=%s result=ok pid=%d", ts, path, o.PID)
	case CauseSpawn:
		return fmt.Sprintf("%s sidecar spawn: path=%s result=spawn-failed error=%v", ts, path, o.Err)
	case CauseUnresolvedDir:
		return fmt.Sprintf("%s sidecar spawn: path=%s result=unresolved-dir error=could not resolve executable directory", ts, path)
	default:
		return fmt.Sprintf("%s sidecar spawn: path=%s result=unknown", ts, path)
	}
}
