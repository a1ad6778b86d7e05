//go:build !windows

package sidecar

import "syscall"

// detachedProcAttr puts the backend in its own session so it survives
// the shell exiting and never becomes the terminal's foreground process.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setsid: true,
	}
}
