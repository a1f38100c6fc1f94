// Package protocol owns the BITS packet contract.
//
// Ownership boundary:
// - packet tree shape
// - recursive-descent decode over a bitstream cursor
// - encode back to hex
// - semantic validation, traversal, and evaluation entry points
package protocol
