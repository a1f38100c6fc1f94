package bitstream

import (
	"errors"
	"fmt"
	"strings"
)

// MaxReadWidth is the widest single ReadUint/WriteUint call.
const MaxReadWidth = 64

var (
	ErrInvalidDigit = errors.New("bitstream: invalid hex digit")
	ErrTruncated    = errors.New("bitstream: truncated stream")
	ErrInvalidWidth = errors.New("bitstream: invalid read width")
)

// InvalidDigitError reports the first character that is not a hex digit.
// Offset counts characters from the start of the input, line breaks
// included. Every character before the first invalid one is ASCII, so it is
// also the byte offset.
type InvalidDigitError struct {
	Offset int
	Char   rune
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("bitstream: invalid hex digit %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidDigitError) Unwrap() error {
	return ErrInvalidDigit
}

// Bits is an immutable sequence of single-bit values, most significant bit
// of each source digit first.
type Bits struct {
	bits []uint8
}

// FromBits copies a slice of 0/1 values into a Bits. Any non-zero value is
// treated as 1.
func FromBits(values []uint8) Bits {
	out := make([]uint8, len(values))
	for i, v := range values {
		if v != 0 {
			out[i] = 1
		}
	}
	return Bits{bits: out}
}

// DecodeHex expands every hex digit of s into four bits. Line breaks are
// skipped and contribute nothing.
func DecodeHex(s string) (Bits, error) {
	out := make([]uint8, 0, len(s)*4)
	for i, ch := range s {
		if ch == '\n' || ch == '\r' {
			continue
		}
		nibble, ok := hexValue(ch)
		if !ok {
			return Bits{}, &InvalidDigitError{Offset: i, Char: ch}
		}
		out = append(out,
			(nibble>>3)&1,
			(nibble>>2)&1,
			(nibble>>1)&1,
			nibble&1,
		)
	}
	return Bits{bits: out}, nil
}

func hexValue(ch rune) (uint8, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return uint8(ch - '0'), true
	case ch >= 'A' && ch <= 'F':
		return uint8(ch-'A') + 10, true
	case ch >= 'a' && ch <= 'f':
		return uint8(ch-'a') + 10, true
	default:
		return 0, false
	}
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return len(b.bits)
}

// String renders the sequence as a string of '0' and '1'.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b.bits))
	for _, v := range b.bits {
		sb.WriteByte('0' + v)
	}
	return sb.String()
}
