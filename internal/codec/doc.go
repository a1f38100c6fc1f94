// Package codec serializes decoded packet trees for export.
//
// Trees cross the boundary as Node values, which name packet types instead
// of carrying raw type ids. CBOR output uses Core Deterministic Encoding, so
// the same tree always produces the same bytes.
package codec
