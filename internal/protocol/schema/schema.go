package schema

import (
	"errors"
	"fmt"

	logs "github.com/danmuck/bitsctl/internal/logging"
)

// TypeID is the 3-bit packet type field.
type TypeID uint8

// Type IDs from the BITS contract.
const (
	TypeSum         TypeID = 0
	TypeProduct     TypeID = 1
	TypeMinimum     TypeID = 2
	TypeMaximum     TypeID = 3
	TypeLiteral     TypeID = 4
	TypeGreaterThan TypeID = 5
	TypeLessThan    TypeID = 6
	TypeEqualTo     TypeID = 7
)

// MaxVersion is the largest value the 3-bit version field can carry.
const MaxVersion = 7

// Unbounded marks a requirement with no upper child limit.
const Unbounded = -1

var (
	ErrUnknownType = errors.New("schema: unknown packet type")
	ErrArity       = errors.New("schema: arity violation")
	ErrVersion     = errors.New("schema: version out of range")
)

// Requirement describes how many children a packet type carries and how it
// is rendered.
type Requirement struct {
	Type        TypeID
	Name        string
	Symbol      string
	MinChildren int
	MaxChildren int
}

type ValidationError struct {
	Type     TypeID
	Children int
	Reason   string
	err      error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("schema: type=%d children=%d: %s", e.Type, e.Children, e.Reason)
}

func (e ValidationError) Unwrap() error {
	return e.err
}

var requirements = map[TypeID]Requirement{
	TypeSum:         {TypeSum, "Sum", "sum", 1, Unbounded},
	TypeProduct:     {TypeProduct, "Product", "mul", 1, Unbounded},
	TypeMinimum:     {TypeMinimum, "Minimum", "min", 1, Unbounded},
	TypeMaximum:     {TypeMaximum, "Maximum", "max", 1, Unbounded},
	TypeLiteral:     {TypeLiteral, "Literal", "lit", 0, 0},
	TypeGreaterThan: {TypeGreaterThan, "GreaterThan", "gt", 2, 2},
	TypeLessThan:    {TypeLessThan, "LessThan", "lt", 2, 2},
	TypeEqualTo:     {TypeEqualTo, "EqualTo", "eq", 2, 2},
}

// Lookup returns the requirement for a type id.
func Lookup(id TypeID) (Requirement, bool) {
	req, ok := requirements[id]
	return req, ok
}

// ParseTypeName resolves a type by name ("Sum") or symbol ("sum").
func ParseTypeName(name string) (TypeID, bool) {
	for id, req := range requirements {
		if req.Name == name || req.Symbol == name {
			return id, true
		}
	}
	return 0, false
}

// String returns the type name, or "Type(n)" for unknown ids.
func (id TypeID) String() string {
	if req, ok := requirements[id]; ok {
		return req.Name
	}
	return fmt.Sprintf("Type(%d)", uint8(id))
}

// Validate checks a packet's type id and child count against the table.
func Validate(id TypeID, children int) error {
	req, ok := requirements[id]
	if !ok {
		logs.Debugf("schema.Validate unknown type=%d", id)
		return ValidationError{Type: id, Children: children, Reason: "unknown packet type", err: ErrUnknownType}
	}
	if children < req.MinChildren {
		logs.Debugf("schema.Validate too few children type=%s got=%d min=%d", req.Name, children, req.MinChildren)
		return ValidationError{
			Type:     id,
			Children: children,
			Reason:   fmt.Sprintf("%s needs at least %d children", req.Name, req.MinChildren),
			err:      ErrArity,
		}
	}
	if req.MaxChildren != Unbounded && children > req.MaxChildren {
		logs.Debugf("schema.Validate too many children type=%s got=%d max=%d", req.Name, children, req.MaxChildren)
		return ValidationError{
			Type:     id,
			Children: children,
			Reason:   fmt.Sprintf("%s takes at most %d children", req.Name, req.MaxChildren),
			err:      ErrArity,
		}
	}
	return nil
}

// ValidateVersion checks that v fits the 3-bit version field.
func ValidateVersion(v uint8) error {
	if v > MaxVersion {
		return fmt.Errorf("%w: %d", ErrVersion, v)
	}
	return nil
}
