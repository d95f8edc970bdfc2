//go:build linux && amd64

package sys

// Syscall numbers used by sys_linux_amd64.s. Arguments go in DI, SI, DX;
// the number goes in AX and the result comes back in AX.
const (
	SYS_WRITE      = 1
	SYS_EXIT_GROUP = 231
)
