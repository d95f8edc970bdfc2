// Package hex renders unsigned integers as lowercase hexadecimal lines
// without allocating.
//
// Output has no leading zeros (zero renders as "0"), ends in '\n', and is
// not NUL terminated: callers pass the returned length to the writer.
package hex

import (
	"errors"
	"math/bits"
)

const (
	// MaxDigits is the number of nibbles in a uint64.
	MaxDigits = 16

	// BufferSize holds any rendered uint64 with room to spare.
	BufferSize = 20
)

// Buffer is sized for any single Format call.
type Buffer [BufferSize]byte

var ErrShortBuffer = errors.New("hex: buffer too short")

// digitStack collects nibbles least significant first.
type digitStack struct {
	d [MaxDigits]byte
	n int
}

func (s *digitStack) push(c byte) {
	if s.n == MaxDigits {
		panic("hex: digit stack full")
	}
	s.d[s.n] = c
	s.n++
}

func (s *digitStack) pop() byte {
	s.n--
	return s.d[s.n]
}

func nibble(d uint64) byte {
	if d < 10 {
		return '0' + byte(d)
	}
	return 'a' + byte(d-10)
}

// Format writes v followed by '\n' into buf and returns the number of bytes
// written. If buf cannot hold the line it is left untouched and
// ErrShortBuffer is returned.
func Format(v uint64, buf []byte) (int, error) {
	var st digitStack
	if v == 0 {
		st.push('0')
	}
	for v > 0 {
		st.push(nibble(v % 16))
		v /= 16
	}

	n := st.n + 1
	if len(buf) < n {
		return 0, ErrShortBuffer
	}
	i := 0
	for st.n > 0 {
		buf[i] = st.pop()
		i++
	}
	buf[i] = '\n'
	return n, nil
}

// Append appends the line for v to dst.
func Append(dst []byte, v uint64) []byte {
	var b Buffer
	n, _ := Format(v, b[:])
	return append(dst, b[:n]...)
}

// Len is the length Format produces for v, newline included.
func Len(v uint64) int {
	if v == 0 {
		return 2
	}
	return (bits.Len64(v)+3)/4 + 1
}
