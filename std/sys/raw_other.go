//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd

package sys

import (
	"errors"
	"os"
)

func (Raw) Write(fd int, p []byte) (int, error) {
	return 0, errors.ErrUnsupported
}

func (Raw) Exit(status int) {
	os.Exit(status)
}
