package codec

import (
	"fmt"
	"io"
	"strings"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat accepts a case-insensitive format name; empty means text.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatCBOR:
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("codec: unknown format %q", raw)
	}
}

// Write encodes v to w in a structured format. Text output is rendered by
// the caller and is rejected here.
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		return writeYAML(w, v)
	case FormatCBOR:
		return writeCBOR(w, v)
	default:
		return fmt.Errorf("codec: format %q is not structured", format)
	}
}
