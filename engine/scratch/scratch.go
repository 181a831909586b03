// Package scratch provides a reusable byte buffer for per-frame text,
// so HUD strings do not churn the garbage collector at 60Hz.
package scratch

import (
	"strconv"
	"unsafe"
)

// Buffer is an append-only text scratchpad. Reset it at the top of a
// frame and build strings with the chainable append methods; capacity
// is retained across resets, so a warmed-up buffer allocates nothing.
//
// The zero value is ready to use. Not safe for concurrent use.
type Buffer struct {
	buf []byte
}

// New creates a buffer with capacity preallocated, for callers that
// want the warm-up allocation at load time.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

func (b *Buffer) Reset()        { b.buf = b.buf[:0] }
func (b *Buffer) Len() int      { return len(b.buf) }
func (b *Buffer) Cap() int      { return cap(b.buf) }
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns a copy of the contents.
func (b *Buffer) String() string { return string(b.buf) }

// View returns the contents as a string without copying. The view is
// valid only until the next append or Reset; hand it to consumers that
// read it immediately and keep nothing.
func (b *Buffer) View() string {
	if len(b.buf) == 0 {
		return ""
	}
	return unsafe.String(&b.buf[0], len(b.buf))
}

// S appends a string.
func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

// C appends one byte.
func (b *Buffer) C(c byte) *Buffer {
	b.buf = append(b.buf, c)
	return b
}

// I appends a decimal integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// U appends a decimal unsigned integer.
func (b *Buffer) U(v uint64) *Buffer {
	b.buf = strconv.AppendUint(b.buf, v, 10)
	return b
}

// F appends v with prec digits after the decimal point.
func (b *Buffer) F(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}
