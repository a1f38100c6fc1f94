package protocol

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/danmuck/bitsctl/internal/protocol/schema"
)

// Evaluate computes the value of the expression rooted at p. Sums and
// products that do not fit in 64 bits fail with ErrOverflow; use EvaluateBig
// for those trees.
func Evaluate(p *Packet) (uint64, error) {
	if p == nil {
		return 0, ErrNilPacket
	}
	if err := schema.Validate(p.Type, len(p.Children)); err != nil {
		return 0, err
	}
	if p.IsLiteral() {
		return p.Value, nil
	}

	values := make([]uint64, len(p.Children))
	for i, child := range p.Children {
		v, err := Evaluate(child)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}

	switch p.Type {
	case TypeSum:
		var acc uint64
		for _, v := range values {
			var carry uint64
			acc, carry = bits.Add64(acc, v, 0)
			if carry != 0 {
				return 0, fmt.Errorf("%w: sum", ErrOverflow)
			}
		}
		return acc, nil
	case TypeProduct:
		acc := uint64(1)
		for _, v := range values {
			hi, lo := bits.Mul64(acc, v)
			if hi != 0 {
				return 0, fmt.Errorf("%w: product", ErrOverflow)
			}
			acc = lo
		}
		return acc, nil
	case TypeMinimum:
		acc := values[0]
		for _, v := range values[1:] {
			acc = min(acc, v)
		}
		return acc, nil
	case TypeMaximum:
		acc := values[0]
		for _, v := range values[1:] {
			acc = max(acc, v)
		}
		return acc, nil
	case TypeGreaterThan:
		return boolValue(values[0] > values[1]), nil
	case TypeLessThan:
		return boolValue(values[0] < values[1]), nil
	case TypeEqualTo:
		return boolValue(values[0] == values[1]), nil
	default:
		return 0, &UnknownTypeError{Type: uint8(p.Type), Offset: -1}
	}
}

// EvaluateBig computes the value of the expression rooted at p with
// arbitrary precision.
func EvaluateBig(p *Packet) (*big.Int, error) {
	if p == nil {
		return nil, ErrNilPacket
	}
	if err := schema.Validate(p.Type, len(p.Children)); err != nil {
		return nil, err
	}
	if p.IsLiteral() {
		return new(big.Int).SetUint64(p.Value), nil
	}

	values := make([]*big.Int, len(p.Children))
	for i, child := range p.Children {
		v, err := EvaluateBig(child)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	switch p.Type {
	case TypeSum:
		acc := new(big.Int)
		for _, v := range values {
			acc.Add(acc, v)
		}
		return acc, nil
	case TypeProduct:
		acc := big.NewInt(1)
		for _, v := range values {
			acc.Mul(acc, v)
		}
		return acc, nil
	case TypeMinimum:
		acc := values[0]
		for _, v := range values[1:] {
			if v.Cmp(acc) < 0 {
				acc = v
			}
		}
		return acc, nil
	case TypeMaximum:
		acc := values[0]
		for _, v := range values[1:] {
			if v.Cmp(acc) > 0 {
				acc = v
			}
		}
		return acc, nil
	case TypeGreaterThan:
		return big.NewInt(int64(boolValue(values[0].Cmp(values[1]) > 0))), nil
	case TypeLessThan:
		return big.NewInt(int64(boolValue(values[0].Cmp(values[1]) < 0))), nil
	case TypeEqualTo:
		return big.NewInt(int64(boolValue(values[0].Cmp(values[1]) == 0))), nil
	default:
		return nil, &UnknownTypeError{Type: uint8(p.Type), Offset: -1}
	}
}

func boolValue(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
