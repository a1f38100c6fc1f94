package protocol

import "github.com/danmuck/bitsctl/internal/protocol/schema"

// Field widths of the BITS wire format.
const (
	VersionWidth     = 3
	TypeWidth        = 3
	LengthTypeWidth  = 1
	TotalLengthWidth = 15
	CountWidth       = 11
	GroupWidth       = 4
)

type TypeID = schema.TypeID

const (
	TypeSum         = schema.TypeSum
	TypeProduct     = schema.TypeProduct
	TypeMinimum     = schema.TypeMinimum
	TypeMaximum     = schema.TypeMaximum
	TypeLiteral     = schema.TypeLiteral
	TypeGreaterThan = schema.TypeGreaterThan
	TypeLessThan    = schema.TypeLessThan
	TypeEqualTo     = schema.TypeEqualTo
)

// LengthType selects how an operator delimits its children.
type LengthType uint8

const (
	// LengthTypeBits prefixes children with their total encoded bit length.
	LengthTypeBits LengthType = 0
	// LengthTypeCount prefixes children with their count.
	LengthTypeCount LengthType = 1
)

// Packet is one decoded unit. Literals carry Value; operators carry Children
// in wire order.
type Packet struct {
	Version  uint8
	Type     TypeID
	Value    uint64
	Children []*Packet
}

// Literal builds a literal packet.
func Literal(version uint8, value uint64) *Packet {
	return &Packet{Version: version, Type: TypeLiteral, Value: value}
}

// Operator builds an operator packet over children.
func Operator(version uint8, typ TypeID, children ...*Packet) *Packet {
	return &Packet{Version: version, Type: typ, Children: children}
}

func (p *Packet) IsLiteral() bool {
	return p.Type == TypeLiteral
}

// Limits bounds decoder resource use. Zero fields are unlimited.
type Limits struct {
	MaxDepth   int
	MaxPackets int
}

func DefaultLimits() Limits {
	return Limits{
		MaxDepth:   1024,
		MaxPackets: 1 << 20,
	}
}
