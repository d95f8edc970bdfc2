// Package systest provides an in-memory sys.Gateway for tests.
package systest

import (
	"bytes"

	"j5.nz/nostd/std/sys"
)

// Recorder collects everything written per descriptor and records the exit
// status instead of terminating the process.
type Recorder struct {
	// MaxChunk caps the bytes accepted by a single Write. Zero means no cap.
	MaxChunk int

	// FailAt makes the FailAt-th Write call (1-based) return FailErr.
	FailAt  int
	FailErr error

	// StallAt makes the StallAt-th Write call accept nothing and report no error.
	StallAt int

	Calls  int
	Exited bool
	Status int

	out map[int]*bytes.Buffer
}

var _ sys.Gateway = (*Recorder)(nil)

func (r *Recorder) Write(fd int, p []byte) (int, error) {
	r.Calls++
	if r.FailAt != 0 && r.Calls == r.FailAt {
		return 0, r.FailErr
	}
	if r.StallAt != 0 && r.Calls == r.StallAt {
		return 0, nil
	}
	n := len(p)
	if r.MaxChunk > 0 && n > r.MaxChunk {
		n = r.MaxChunk
	}
	if r.out == nil {
		r.out = make(map[int]*bytes.Buffer)
	}
	b, ok := r.out[fd]
	if !ok {
		b = new(bytes.Buffer)
		r.out[fd] = b
	}
	b.Write(p[:n])
	return n, nil
}

// Exit records status. Unlike the real gateway it returns to the caller.
func (r *Recorder) Exit(status int) {
	r.Exited = true
	r.Status = status
}

// Output returns everything accepted on fd so far.
func (r *Recorder) Output(fd int) string {
	if b, ok := r.out[fd]; ok {
		return b.String()
	}
	return ""
}
