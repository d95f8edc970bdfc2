//go:build linux && (amd64 || arm64)

package sys

import "unsafe"

// Implemented in sys_linux_$GOARCH.s.

//go:noescape
func rawWrite(fd uintptr, p unsafe.Pointer, n uintptr) (r uintptr)

func rawExit(status uintptr)

func (Raw) Write(fd int, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r := rawWrite(uintptr(fd), unsafe.Pointer(&p[0]), uintptr(len(p)))
	if e := -int(r); e > 0 && e <= maxErrno {
		return 0, Errno(e)
	}
	return int(r), nil
}

func (Raw) Exit(status int) {
	rawExit(uintptr(status))
	panic("sys: exit_group returned")
}
