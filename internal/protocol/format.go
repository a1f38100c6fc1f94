package protocol

import (
	"strconv"
	"strings"

	"github.com/danmuck/bitsctl/internal/protocol/schema"
)

// String renders the tree as an expression, e.g. "eq(sum(1, 3), mul(2, 2))".
func (p *Packet) String() string {
	var sb strings.Builder
	p.format(&sb)
	return sb.String()
}

func (p *Packet) format(sb *strings.Builder) {
	if p == nil {
		sb.WriteString("<nil>")
		return
	}
	if p.IsLiteral() {
		sb.WriteString(strconv.FormatUint(p.Value, 10))
		return
	}
	name := p.Type.String()
	if req, ok := schema.Lookup(p.Type); ok {
		name = req.Symbol
	}
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, child := range p.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		child.format(sb)
	}
	sb.WriteByte(')')
}
