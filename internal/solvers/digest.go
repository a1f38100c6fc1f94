package solvers

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

const digestPrefix = "blake3:"

// Digest fingerprints normalized puzzle input for logs and reports.
func Digest(input string) string {
	sum := blake3.Sum256([]byte(input))
	return digestPrefix + hex.EncodeToString(sum[:])
}
