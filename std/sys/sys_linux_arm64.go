//go:build linux && arm64

package sys

// Syscall numbers used by sys_linux_arm64.s. Arguments go in R0, R1, R2;
// the number goes in R8 and the result comes back in R0.
const (
	SYS_WRITE      = 64
	SYS_EXIT_GROUP = 94
)
