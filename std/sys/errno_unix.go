//go:build unix

package sys

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Errno is a kernel error number.
type Errno = unix.Errno

// The kernel reports failure as a return value in [-4095, -1].
const maxErrno = 4095

func retryable(err error) bool {
	return errors.Is(err, unix.EINTR)
}
