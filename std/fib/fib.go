// Package fib generates Fibonacci terms in fixed-width unsigned integers,
// stopping with an error where the next term would not fit instead of
// wrapping around.
package fib

import (
	"errors"
	"fmt"
	"math/bits"
)

type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type State int

const (
	Running State = iota
	Overflow
	Done
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Overflow:
		return "overflow"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrDone     = errors.New("fib: term limit reached")
	ErrOverflow = errors.New("fib: overflow")
)

// OverflowError reports the first term index that could not be produced.
type OverflowError struct {
	Index int
	Bits  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("fib: term %d overflows uint%d", e.Index, e.Bits)
}

func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// Generator yields F(0), F(1), ... up to a term limit.
//
// prev is the last term handed out and cur the one after it, so producing
// term n needs F(n+1) to fit in T as well.
type Generator[T Unsigned] struct {
	prev, cur T
	count     int
	limit     int
	state     State
	err       error
}

// New returns a generator for the first limit terms.
func New[T Unsigned](limit int) *Generator[T] {
	return &Generator[T]{cur: 1, limit: limit}
}

// Next returns the next term. It returns ErrDone after limit terms and an
// *OverflowError when the sequence can no longer be represented; both are
// sticky.
func (g *Generator[T]) Next() (T, error) {
	switch g.state {
	case Overflow:
		return 0, g.err
	case Done:
		return 0, ErrDone
	}
	if g.count >= g.limit {
		g.state = Done
		return 0, ErrDone
	}
	if g.count == 0 {
		g.count++
		return g.prev, nil
	}

	next, ok := checkedAdd(g.prev, g.cur)
	if !ok {
		g.state = Overflow
		g.err = &OverflowError{Index: g.count, Bits: width[T]()}
		return 0, g.err
	}
	g.prev, g.cur = g.cur, next
	g.count++
	return g.prev, nil
}

func (g *Generator[T]) State() State {
	return g.state
}

// Count is the number of terms produced so far.
func (g *Generator[T]) Count() int {
	return g.count
}

// Term returns F(n).
func Term[T Unsigned](n int) (T, error) {
	if n < 0 {
		return 0, fmt.Errorf("fib: negative term index %d", n)
	}
	g := New[T](n + 1)
	var v T
	for {
		t, err := g.Next()
		if errors.Is(err, ErrDone) {
			return v, nil
		}
		if err != nil {
			return 0, err
		}
		v = t
	}
}

func checkedAdd[T Unsigned](a, b T) (T, bool) {
	s := a + b
	return s, s >= a
}

func width[T Unsigned]() int {
	var zero T
	return bits.Len64(uint64(^zero))
}
