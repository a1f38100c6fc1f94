package protocol

import (
	"fmt"

	logs "github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/protocol/bitstream"
	"github.com/danmuck/bitsctl/internal/protocol/schema"
)

// Decode parses a hex transmission into its outermost packet using
// DefaultLimits. Padding after the outermost packet is ignored.
func Decode(hex string) (*Packet, error) {
	return DecodeWithLimits(hex, DefaultLimits())
}

// DecodeWithLimits is Decode with explicit resource limits.
func DecodeWithLimits(hex string, limits Limits) (*Packet, error) {
	bits, err := bitstream.DecodeHex(hex)
	if err != nil {
		return nil, err
	}
	if bits.Len() == 0 {
		return nil, ErrEmpty
	}
	c := bitstream.NewCursor(bits)
	p := &parser{c: c, limits: limits}
	root, err := p.packet(0)
	if err != nil {
		return nil, err
	}
	logs.Debugf("protocol.Decode ok bits=%d consumed=%d packets=%d", c.Len(), c.Pos(), p.packets)
	return root, nil
}

// Parse reads one packet, including all descendants, from c. On success the
// cursor sits on the first bit after the packet.
func Parse(c *bitstream.Cursor) (*Packet, error) {
	return ParseWithLimits(c, DefaultLimits())
}

// ParseWithLimits is Parse with explicit resource limits.
func ParseWithLimits(c *bitstream.Cursor, limits Limits) (*Packet, error) {
	p := &parser{c: c, limits: limits}
	return p.packet(0)
}

type parser struct {
	c       *bitstream.Cursor
	limits  Limits
	packets int
}

func (p *parser) read(n int, field string) (uint64, error) {
	v, err := p.c.ReadUint(n)
	if err != nil {
		return 0, fmt.Errorf("protocol: reading %s: %w", field, err)
	}
	return v, nil
}

func (p *parser) packet(depth int) (*Packet, error) {
	if p.limits.MaxDepth > 0 && depth >= p.limits.MaxDepth {
		return nil, fmt.Errorf("%w: %d", ErrDepthExceeded, p.limits.MaxDepth)
	}
	p.packets++
	if p.limits.MaxPackets > 0 && p.packets > p.limits.MaxPackets {
		return nil, fmt.Errorf("%w: %d", ErrTooManyPackets, p.limits.MaxPackets)
	}

	start := p.c.Pos()
	version, err := p.read(VersionWidth, "version")
	if err != nil {
		return nil, err
	}
	typeID, err := p.read(TypeWidth, "type id")
	if err != nil {
		return nil, err
	}

	if TypeID(typeID) == TypeLiteral {
		value, err := p.literal()
		if err != nil {
			return nil, err
		}
		return Literal(uint8(version), value), nil
	}

	if _, ok := schema.Lookup(TypeID(typeID)); !ok {
		return nil, &UnknownTypeError{Type: uint8(typeID), Offset: start + VersionWidth}
	}
	children, err := p.children(depth)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(TypeID(typeID), len(children)); err != nil {
		return nil, fmt.Errorf("protocol: packet at bit %d: %w", start, err)
	}
	return Operator(uint8(version), TypeID(typeID), children...), nil
}

// literal accumulates 4-bit groups until a group with a zero continuation
// bit.
func (p *parser) literal() (uint64, error) {
	var value uint64
	for {
		more, err := p.read(1, "literal continuation bit")
		if err != nil {
			return 0, err
		}
		group, err := p.read(GroupWidth, "literal group")
		if err != nil {
			return 0, err
		}
		if value>>(64-GroupWidth) != 0 {
			return 0, ErrLiteralOverflow
		}
		value = value<<GroupWidth | group
		if more == 0 {
			return value, nil
		}
	}
}

func (p *parser) children(depth int) ([]*Packet, error) {
	lengthType, err := p.read(LengthTypeWidth, "length type id")
	if err != nil {
		return nil, err
	}
	if LengthType(lengthType) == LengthTypeBits {
		total, err := p.read(TotalLengthWidth, "sub-packet bit length")
		if err != nil {
			return nil, err
		}
		return p.childrenByLength(depth, int(total))
	}
	count, err := p.read(CountWidth, "sub-packet count")
	if err != nil {
		return nil, err
	}
	return p.childrenByCount(depth, int(count))
}

func (p *parser) childrenByLength(depth, total int) ([]*Packet, error) {
	children := make([]*Packet, 0, 2)
	consumed := 0
	for consumed < total {
		start := p.c.Pos()
		child, err := p.packet(depth + 1)
		if err != nil {
			return nil, err
		}
		consumed += p.c.Pos() - start
		children = append(children, child)
	}
	if consumed != total {
		return nil, fmt.Errorf("%w: declared %d, consumed %d", ErrLengthMismatch, total, consumed)
	}
	return children, nil
}

func (p *parser) childrenByCount(depth, count int) ([]*Packet, error) {
	children := make([]*Packet, 0, count)
	for i := 0; i < count; i++ {
		child, err := p.packet(depth + 1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
