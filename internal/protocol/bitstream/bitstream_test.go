package bitstream

import (
	"errors"
	"testing"
)

func TestDecodeHexDigits(t *testing.T) {
	want := map[rune]string{
		'0': "0000", '1': "0001", '2': "0010", '3': "0011",
		'4': "0100", '5': "0101", '6': "0110", '7': "0111",
		'8': "1000", '9': "1001", 'A': "1010", 'B': "1011",
		'C': "1100", 'D': "1101", 'E': "1110", 'F': "1111",
	}
	for digit, bits := range want {
		got, err := DecodeHex(string(digit))
		if err != nil {
			t.Fatalf("decode %q: %v", digit, err)
		}
		if got.String() != bits {
			t.Fatalf("decode %q = %s, want %s", digit, got, bits)
		}
	}
}

func TestDecodeHexSequence(t *testing.T) {
	got, err := DecodeHex("D2FE28")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.String() != "110100101111111000101000" {
		t.Fatalf("unexpected bits: %s", got)
	}
	if got.Len() != 24 {
		t.Fatalf("len = %d", got.Len())
	}
}

func TestDecodeHexSkipsNewlines(t *testing.T) {
	got, err := DecodeHex("D2\nFE\r\n28\n")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.String() != "110100101111111000101000" {
		t.Fatalf("unexpected bits: %s", got)
	}
}

func TestDecodeHexLowercase(t *testing.T) {
	lower, err := DecodeHex("d2fe28")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if lower.String() != "110100101111111000101000" {
		t.Fatalf("unexpected bits: %s", lower)
	}
}

func TestDecodeHexInvalidDigit(t *testing.T) {
	_, err := DecodeHex("D2G8")
	if !errors.Is(err, ErrInvalidDigit) {
		t.Fatalf("expected ErrInvalidDigit, got %v", err)
	}
	var digitErr *InvalidDigitError
	if !errors.As(err, &digitErr) {
		t.Fatalf("expected InvalidDigitError, got %T", err)
	}
	if digitErr.Offset != 2 || digitErr.Char != 'G' {
		t.Fatalf("unexpected error detail: %+v", digitErr)
	}
}

func TestDecodeHexInvalidMultibyteDigit(t *testing.T) {
	_, err := DecodeHex("D2\nF\u00e9A")
	var digitErr *InvalidDigitError
	if !errors.As(err, &digitErr) {
		t.Fatalf("expected InvalidDigitError, got %v", err)
	}
	if digitErr.Offset != 4 || digitErr.Char != '\u00e9' {
		t.Fatalf("unexpected error detail: %+v", digitErr)
	}
}

func TestDecodeHexEmpty(t *testing.T) {
	got, err := DecodeHex("\n")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("expected no bits, got %d", got.Len())
	}
}

func TestCursorReads(t *testing.T) {
	b, err := DecodeHex("D2FE28")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	c := NewCursor(b)

	version, err := c.ReadUint(3)
	if err != nil || version != 6 {
		t.Fatalf("version = %d, %v", version, err)
	}
	typeID, err := c.ReadUint(3)
	if err != nil || typeID != 4 {
		t.Fatalf("type = %d, %v", typeID, err)
	}
	bit, err := c.ReadBit()
	if err != nil || bit != 1 {
		t.Fatalf("bit = %d, %v", bit, err)
	}
	if c.Pos() != 7 || c.Remaining() != 17 || c.Len() != 24 {
		t.Fatalf("pos=%d remaining=%d len=%d", c.Pos(), c.Remaining(), c.Len())
	}
}

func TestCursorTruncatedLeavesPosition(t *testing.T) {
	b, _ := DecodeHex("F")
	c := NewCursor(b)
	if _, err := c.ReadUint(3); err != nil {
		t.Fatalf("read: %v", err)
	}
	_, err := c.ReadUint(2)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if c.Pos() != 3 {
		t.Fatalf("failed read moved cursor to %d", c.Pos())
	}
	if _, err := c.ReadBit(); err != nil {
		t.Fatalf("last bit: %v", err)
	}
	if _, err := c.ReadBit(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestCursorInvalidWidth(t *testing.T) {
	c := NewCursor(Bits{})
	if _, err := c.ReadUint(65); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
	if v, err := c.ReadUint(0); err != nil || v != 0 {
		t.Fatalf("zero-width read = %d, %v", v, err)
	}
}

func TestWriterHexPadsTail(t *testing.T) {
	var w Writer
	if err := w.WriteUint(6, 3); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.WriteUint(4, 3); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.WriteBit(1)
	if w.Len() != 7 {
		t.Fatalf("len = %d", w.Len())
	}
	// 1101001 + pad 0 -> D2
	if got := w.Hex(); got != "D2" {
		t.Fatalf("hex = %s", got)
	}
	if got := w.Bits().String(); got != "1101001" {
		t.Fatalf("bits = %s", got)
	}
}

func TestWriterRejectsOversizedValue(t *testing.T) {
	var w Writer
	if err := w.WriteUint(8, 3); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
	if err := w.WriteUint(^uint64(0), 64); err != nil {
		t.Fatalf("full width write: %v", err)
	}
}

func TestWriterCursorRoundTrip(t *testing.T) {
	var w Writer
	values := []struct {
		v uint64
		n int
	}{{5, 3}, {0, 1}, {1234, 15}, {3, 11}, {0xFFFF, 16}}
	for _, tc := range values {
		if err := w.WriteUint(tc.v, tc.n); err != nil {
			t.Fatalf("write %d/%d: %v", tc.v, tc.n, err)
		}
	}
	b, err := DecodeHex(w.Hex())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	c := NewCursor(b)
	for _, tc := range values {
		got, err := c.ReadUint(tc.n)
		if err != nil || got != tc.v {
			t.Fatalf("read %d bits = %d, %v; want %d", tc.n, got, err, tc.v)
		}
	}
}

func TestFromBitsNormalizes(t *testing.T) {
	b := FromBits([]uint8{0, 2, 1, 0})
	if b.String() != "0110" {
		t.Fatalf("bits = %s", b)
	}
}

func TestFromBitsCopiesInput(t *testing.T) {
	values := []uint8{1, 0}
	b := FromBits(values)
	values[0] = 0
	if b.String() != "10" {
		t.Fatalf("bits = %s", b)
	}
}
