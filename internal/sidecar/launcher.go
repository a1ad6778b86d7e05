package sidecar

import (
	"os/exec"
)

// Launch attempts to start the backend binary at path as a detached
// child process. ok=false (an unresolved executable directory) is
// recorded as a distinct cause without attempting a spawn.
//
// The child gets no arguments, no piped stdio, and inherits the parent
// environment. The process handle is released immediately: the backend
// is never awaited or supervised. If its listen address is already
// bound, the spawn still succeeds here; the backend detects the conflict
// and exits gracefully on its own.
func Launch(path string, ok bool) LaunchOutcome {
	if !ok {
		return LaunchOutcome{Cause: CauseUnresolvedDir}
	}

	cmd := exec.Command(path)
	cmd.SysProcAttr = detachedProcAttr()
	if err := cmd.Start(); err != nil {
		return LaunchOutcome{Path: path, Cause: CauseSpawn, Err: err}
	}

	pid := cmd.Process.Pid
	// Drop the handle so the child outlives the shell without a zombie
	// reaper obligation on our side.
	_ = cmd.Process.Release()

	return LaunchOutcome{Path: path, Cause: CauseNone, PID: pid}
}

// Bootstrap performs the whole launch sequence once: resolve the backend
// path, spawn it, and append one diagnostic line to the sidecar log at
// logPath. It returns the outcome for the caller's benefit but never an
// error — a failed backend launch must not fail application startup.
func Bootstrap(logPath string) LaunchOutcome {
	path, ok := ResolvePath()
	outcome := Launch(path, ok)
	appendDiagnostic(logPath, outcome)
	return outcome
}
