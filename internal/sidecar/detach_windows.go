//go:build windows

package sidecar

import "syscall"

// CREATE_NEW_PROCESS_GROUP | DETACHED_PROCESS: the backend gets its own
// console-less process group and ignores Ctrl+C sent to the shell.
const detachedCreationFlags = syscall.CREATE_NEW_PROCESS_GROUP | 0x00000008

func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: detachedCreationFlags,
	}
}
