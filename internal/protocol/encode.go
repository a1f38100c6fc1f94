package protocol

import (
	"fmt"

	"github.com/danmuck/bitsctl/internal/protocol/bitstream"
	"github.com/danmuck/bitsctl/internal/protocol/schema"
)

const (
	maxTotalLength = 1<<TotalLengthWidth - 1
	maxCount       = 1<<CountWidth - 1
)

// EncodeOptions controls operator framing. The zero value frames children
// by total bit length.
type EncodeOptions struct {
	LengthType LengthType
}

// Encode writes the tree as uppercase hex. Literals use the fewest groups
// that hold their value and the tail is zero-padded to a whole hex digit.
func Encode(root *Packet, opts EncodeOptions) (string, error) {
	bits, err := EncodeBits(root, opts)
	if err != nil {
		return "", err
	}
	var w bitstream.Writer
	w.WriteBits(bits)
	return w.Hex(), nil
}

// EncodeBits is Encode without hex padding.
func EncodeBits(root *Packet, opts EncodeOptions) (bitstream.Bits, error) {
	if err := Validate(root); err != nil {
		return bitstream.Bits{}, err
	}
	if opts.LengthType != LengthTypeBits && opts.LengthType != LengthTypeCount {
		return bitstream.Bits{}, fmt.Errorf("%w: length type %d", ErrInvalidLength, opts.LengthType)
	}
	var w bitstream.Writer
	if err := writePacket(&w, root, opts); err != nil {
		return bitstream.Bits{}, err
	}
	return w.Bits(), nil
}

func writePacket(w *bitstream.Writer, p *Packet, opts EncodeOptions) error {
	if err := w.WriteUint(uint64(p.Version), VersionWidth); err != nil {
		return err
	}
	if _, ok := schema.Lookup(p.Type); !ok {
		return &UnknownTypeError{Type: uint8(p.Type), Offset: -1}
	}
	if err := w.WriteUint(uint64(p.Type), TypeWidth); err != nil {
		return err
	}
	if p.IsLiteral() {
		return writeLiteral(w, p.Value)
	}

	if opts.LengthType == LengthTypeCount {
		if len(p.Children) > maxCount {
			return fmt.Errorf("%w: %d children exceed count field", ErrInvalidLength, len(p.Children))
		}
		w.WriteBit(uint8(LengthTypeCount))
		if err := w.WriteUint(uint64(len(p.Children)), CountWidth); err != nil {
			return err
		}
		for _, child := range p.Children {
			if err := writePacket(w, child, opts); err != nil {
				return err
			}
		}
		return nil
	}

	var body bitstream.Writer
	for _, child := range p.Children {
		if err := writePacket(&body, child, opts); err != nil {
			return err
		}
	}
	if body.Len() > maxTotalLength {
		return fmt.Errorf("%w: %d sub-packet bits exceed length field", ErrInvalidLength, body.Len())
	}
	w.WriteBit(uint8(LengthTypeBits))
	if err := w.WriteUint(uint64(body.Len()), TotalLengthWidth); err != nil {
		return err
	}
	w.WriteBits(body.Bits())
	return nil
}

func writeLiteral(w *bitstream.Writer, value uint64) error {
	groups := 1
	for v := value >> GroupWidth; v != 0; v >>= GroupWidth {
		groups++
	}
	for i := groups - 1; i >= 0; i-- {
		if i > 0 {
			w.WriteBit(1)
		} else {
			w.WriteBit(0)
		}
		group := (value >> uint(i*GroupWidth)) & 0xF
		if err := w.WriteUint(group, GroupWidth); err != nil {
			return err
		}
	}
	return nil
}
