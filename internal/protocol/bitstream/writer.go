package bitstream

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// Writer accumulates bits for encoding.
type Writer struct {
	bits []uint8
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return len(w.bits)
}

func (w *Writer) WriteBit(bit uint8) {
	w.bits = append(w.bits, bit&1)
}

// WriteUint writes the low n bits of v, most significant first. v must fit
// in n bits.
func (w *Writer) WriteUint(v uint64, n int) error {
	if n < 0 || n > MaxReadWidth {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, n)
	}
	if n < MaxReadWidth && v>>uint(n) != 0 {
		return fmt.Errorf("%w: value %d does not fit in %d bits", ErrInvalidWidth, v, n)
	}
	for i := n - 1; i >= 0; i-- {
		w.bits = append(w.bits, uint8(v>>uint(i))&1)
	}
	return nil
}

// WriteBits appends every bit of b.
func (w *Writer) WriteBits(b Bits) {
	w.bits = append(w.bits, b.bits...)
}

// Bits returns a snapshot of the written sequence.
func (w *Writer) Bits() Bits {
	return FromBits(w.bits)
}

// Hex renders the written bits as uppercase hex, zero-padding the tail to a
// whole digit.
func (w *Writer) Hex() string {
	var sb strings.Builder
	sb.Grow((len(w.bits) + 3) / 4)
	for i := 0; i < len(w.bits); i += 4 {
		var nibble uint8
		for j := 0; j < 4; j++ {
			nibble <<= 1
			if i+j < len(w.bits) {
				nibble |= w.bits[i+j]
			}
		}
		sb.WriteByte(hexDigits[nibble])
	}
	return sb.String()
}
