//go:build (darwin || dragonfly || freebsd || linux || netbsd || openbsd) && !(linux && (amd64 || arm64))

package sys

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Targets without a hand-written stub go through x/sys, which still skips
// the os package and the scheduler hooks.

func (Raw) Write(fd int, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, _, errno := unix.RawSyscall(unix.SYS_WRITE, uintptr(fd), uintptr(unsafe.Pointer(&p[0])), uintptr(len(p)))
	if errno != 0 {
		return 0, errno
	}
	return int(n), nil
}

func (Raw) Exit(status int) {
	unix.Exit(status)
	panic("sys: exit returned")
}
