package protocol

import (
	"fmt"

	"github.com/danmuck/bitsctl/internal/protocol/schema"
)

// Validate checks a tree that did not come from the decoder: every packet
// must have a known type, a 3-bit version, and the child count its type
// requires, and no packet may be reachable twice.
func Validate(root *Packet) error {
	if root == nil {
		return ErrNilPacket
	}
	seen := make(map[*Packet]struct{})
	stack := []*Packet{root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := seen[p]; dup {
			return ErrSharedPacket
		}
		seen[p] = struct{}{}

		if err := schema.ValidateVersion(p.Version); err != nil {
			return fmt.Errorf("protocol: %w", err)
		}
		if err := schema.Validate(p.Type, len(p.Children)); err != nil {
			return err
		}
		for _, child := range p.Children {
			if child == nil {
				return fmt.Errorf("%w: child of %s", ErrNilPacket, p.Type)
			}
			stack = append(stack, child)
		}
	}
	return nil
}
