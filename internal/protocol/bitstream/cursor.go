package bitstream

import "fmt"

// Cursor reads a Bits sequence front to back. The sequence is shared and
// read-only; the position is owned by the cursor and only moves forward.
type Cursor struct {
	bits Bits
	pos  int
}

func NewCursor(b Bits) *Cursor {
	return &Cursor{bits: b}
}

// Pos returns the offset of the next unread bit.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total number of bits behind the cursor.
func (c *Cursor) Len() int {
	return c.bits.Len()
}

// Remaining returns the number of unread bits.
func (c *Cursor) Remaining() int {
	return c.bits.Len() - c.pos
}

// ReadBit reads one bit and advances by one.
func (c *Cursor) ReadBit() (uint8, error) {
	if c.pos >= c.bits.Len() {
		return 0, fmt.Errorf("%w: need 1 bit at offset %d, 0 remain", ErrTruncated, c.pos)
	}
	v := c.bits.bits[c.pos]
	c.pos++
	return v, nil
}

// ReadUint reads n bits as a big-endian unsigned integer and advances by n.
// A failed read leaves the position unchanged.
func (c *Cursor) ReadUint(n int) (uint64, error) {
	if n < 0 || n > MaxReadWidth {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWidth, n)
	}
	if n > c.Remaining() {
		return 0, fmt.Errorf("%w: need %d bits at offset %d, %d remain", ErrTruncated, n, c.pos, c.Remaining())
	}
	var v uint64
	for _, bit := range c.bits.bits[c.pos : c.pos+n] {
		v = v<<1 | uint64(bit)
	}
	c.pos += n
	return v, nil
}
