// Package sidecar boots the bundled backend process alongside the shell.
// It resolves the backend binary next to the running executable, spawns
// it exactly once as a detached child, and appends one diagnostic line
// per attempt to sidecar.log in the application data directory. Every
// failure is folded into a LaunchOutcome value; nothing in this package
// can abort application startup.
//
// The spawned backend is launch-and-forget: no process handle is
// retained, and port conflicts on its listen address are resolved by the
// backend itself exiting gracefully.
package sidecar
