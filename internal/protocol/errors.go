package protocol

import (
	"errors"
	"fmt"

	"github.com/danmuck/bitsctl/internal/protocol/bitstream"
	"github.com/danmuck/bitsctl/internal/protocol/schema"
)

var (
	ErrEmpty           = errors.New("protocol: empty transmission")
	ErrNilPacket       = errors.New("protocol: nil packet")
	ErrSharedPacket    = errors.New("protocol: packet reachable more than once")
	ErrLiteralOverflow = errors.New("protocol: literal wider than 64 bits")
	ErrLengthMismatch  = errors.New("protocol: sub-packets overran declared bit length")
	ErrInvalidLength   = errors.New("protocol: invalid length")
	ErrOverflow        = errors.New("protocol: arithmetic overflow")
	ErrDepthExceeded   = errors.New("protocol: nesting depth limit exceeded")
	ErrTooManyPackets  = errors.New("protocol: packet count limit exceeded")

	// Re-exported from schema so callers only import protocol.
	ErrUnknownType = schema.ErrUnknownType
	ErrArity       = schema.ErrArity
)

// UnknownTypeError reports a type id with no defined semantics. Offset is
// the bit position of the type field, or -1 when the packet was not decoded.
type UnknownTypeError struct {
	Type   uint8
	Offset int
}

func (e *UnknownTypeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("protocol: unknown packet type %d", e.Type)
	}
	return fmt.Sprintf("protocol: unknown packet type %d at bit %d", e.Type, e.Offset)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// Kind returns a short stable label for err, used for metrics and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, bitstream.ErrInvalidDigit):
		return "invalid_digit"
	case errors.Is(err, bitstream.ErrTruncated):
		return "truncated"
	case errors.Is(err, ErrEmpty):
		return "empty"
	case errors.Is(err, ErrUnknownType):
		return "unknown_type"
	case errors.Is(err, ErrArity):
		return "arity"
	case errors.Is(err, ErrLiteralOverflow):
		return "literal_overflow"
	case errors.Is(err, ErrLengthMismatch):
		return "length_mismatch"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	case errors.Is(err, ErrDepthExceeded), errors.Is(err, ErrTooManyPackets):
		return "limit"
	default:
		return "other"
	}
}
