package codec

import (
	"fmt"

	"github.com/danmuck/bitsctl/internal/protocol"
	"github.com/danmuck/bitsctl/internal/protocol/schema"
)

// Node is the export shape of a packet.
type Node struct {
	Version  uint8   `cbor:"version" yaml:"version"`
	Type     string  `cbor:"type" yaml:"type"`
	Value    *uint64 `cbor:"value,omitempty" yaml:"value,omitempty"`
	Children []Node  `cbor:"children,omitempty" yaml:"children,omitempty"`
}

// FromPacket converts a packet tree to its export shape.
func FromPacket(p *protocol.Packet) Node {
	if p == nil {
		return Node{}
	}
	n := Node{Version: p.Version, Type: p.Type.String()}
	if p.IsLiteral() {
		v := p.Value
		n.Value = &v
		return n
	}
	n.Children = make([]Node, 0, len(p.Children))
	for _, child := range p.Children {
		n.Children = append(n.Children, FromPacket(child))
	}
	return n
}

// Packet converts the node back to a packet tree and validates it.
func (n Node) Packet() (*protocol.Packet, error) {
	p, err := n.packet()
	if err != nil {
		return nil, err
	}
	if err := protocol.Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (n Node) packet() (*protocol.Packet, error) {
	typ, ok := schema.ParseTypeName(n.Type)
	if !ok {
		return nil, fmt.Errorf("codec: %w: %q", protocol.ErrUnknownType, n.Type)
	}
	if typ == protocol.TypeLiteral {
		if n.Value == nil {
			return nil, fmt.Errorf("codec: literal without value")
		}
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("codec: %w: literal with children", protocol.ErrArity)
		}
		return protocol.Literal(n.Version, *n.Value), nil
	}
	children := make([]*protocol.Packet, 0, len(n.Children))
	for _, c := range n.Children {
		child, err := c.packet()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return protocol.Operator(n.Version, typ, children...), nil
}
