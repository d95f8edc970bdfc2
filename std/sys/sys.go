// Package sys is the boundary between the example programs and the kernel.
//
// Only the platform files in this package know syscall numbers or which
// register carries which argument. Everything above it talks to a Gateway.
package sys

import (
	"errors"
	"fmt"
	"io"
)

const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

// Gateway issues the two operating system services the programs use.
type Gateway interface {
	// Write hands p to the kernel and returns the number of bytes it
	// accepted. A count smaller than len(p) is not an error.
	Write(fd int, p []byte) (int, error)

	// Exit terminates the process with status. It does not return.
	Exit(status int)
}

// Raw is the Gateway backed by the platform's system call instruction.
// It does not go through the os package or the Go scheduler.
type Raw struct{}

var _ Gateway = Raw{}

var errBadCount = errors.New("write returned an out of range count")

// IoError reports a write that could not be completed.
type IoError struct {
	Op      string
	Fd      int
	Written int // bytes accepted before the failure
	Err     error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s fd %d: %v (%d bytes written)", e.Op, e.Fd, e.Err, e.Written)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// WriteAll writes p to fd, issuing as many writes as the kernel needs to
// accept every byte. Interrupted writes are retried; any other failure, or a
// write that makes no progress, stops with an *IoError.
func WriteAll(g Gateway, fd int, p []byte) error {
	written := 0
	for written < len(p) {
		n, err := g.Write(fd, p[written:])
		if n < 0 || n > len(p)-written {
			return &IoError{Op: "write", Fd: fd, Written: written, Err: errBadCount}
		}
		written += n
		if err != nil {
			if retryable(err) {
				continue
			}
			return &IoError{Op: "write", Fd: fd, Written: written, Err: err}
		}
		if n == 0 {
			return &IoError{Op: "write", Fd: fd, Written: written, Err: io.ErrShortWrite}
		}
	}
	return nil
}

// File is an io.Writer over a single descriptor of a Gateway.
type File struct {
	g  Gateway
	fd int
}

func NewFile(g Gateway, fd int) *File {
	return &File{g: g, fd: fd}
}

func (f *File) Fd() int {
	return f.fd
}

func (f *File) Write(p []byte) (int, error) {
	err := WriteAll(f.g, f.fd, p)
	if err != nil {
		var ioErr *IoError
		if errors.As(err, &ioErr) {
			return ioErr.Written, err
		}
		return 0, err
	}
	return len(p), nil
}
