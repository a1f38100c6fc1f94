package solvers

import (
	"math/big"
	"strconv"

	"github.com/danmuck/bitsctl/internal/protocol"
)

// Metadata is the contract for solver identity and display data.
type Metadata struct {
	Day  int
	Name string
}

// Report is the result of one solve. Tree is set by solvers whose input
// decodes to a packet tree. Part2Exact is set, and Part2 left zero, when the
// answer does not fit in 64 bits.
type Report struct {
	Day        int
	Challenge  string
	Part1      uint64
	Part2      uint64
	Part2Exact *big.Int
	Digest     string
	Bits       int
	Packets    int
	Depth      int
	Tree       *protocol.Packet
}

// Solver turns one day's raw input into both answers.
type Solver interface {
	Metadata() Metadata
	Solve(input string) (Report, error)
}

// Answer2 renders part 2 in decimal, preferring the exact value.
func (r Report) Answer2() string {
	if r.Part2Exact != nil {
		return r.Part2Exact.String()
	}
	return strconv.FormatUint(r.Part2, 10)
}
