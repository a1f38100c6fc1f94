package solvers

import (
	"errors"
	"strings"
	"time"

	logs "github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/danmuck/bitsctl/internal/protocol"
)

// PacketDecoderDay is the puzzle day of the BITS decoder.
const PacketDecoderDay = 16

// PacketDecoder solves the BITS transmission puzzle: part 1 is the version
// sum, part 2 the evaluated expression. Expressions that overflow uint64 are
// reported through Report.Part2Exact.
type PacketDecoder struct {
	Limits protocol.Limits
}

func NewPacketDecoder(limits protocol.Limits) *PacketDecoder {
	return &PacketDecoder{Limits: limits}
}

func (d *PacketDecoder) Metadata() Metadata {
	return Metadata{Day: PacketDecoderDay, Name: "Packet Decoder"}
}

func (d *PacketDecoder) Solve(input string) (Report, error) {
	start := time.Now()
	hex := normalize(input)
	report := Report{
		Day:       PacketDecoderDay,
		Challenge: d.Metadata().Name,
		Digest:    Digest(hex),
		Bits:      len(hex) * 4,
	}

	root, err := protocol.DecodeWithLimits(hex, d.Limits)
	if err == nil {
		report.Part1 = protocol.SumVersions(root)
		report.Part2, err = protocol.Evaluate(root)
		if errors.Is(err, protocol.ErrOverflow) {
			report.Part2Exact, err = protocol.EvaluateBig(root)
		}
	}
	elapsed := time.Since(start)
	if err != nil {
		kind := protocol.Kind(err)
		observability.RecordDecodeError(PacketDecoderDay, kind, elapsed)
		observability.LogDecode(logs.Logger(), observability.DecodeEvent{
			Day:      PacketDecoderDay,
			Digest:   report.Digest,
			Bits:     report.Bits,
			Duration: elapsed,
			Err:      err,
			Kind:     kind,
		})
		return Report{}, err
	}

	report.Tree = root
	report.Packets = protocol.Count(root)
	report.Depth = protocol.Depth(root)
	observability.RecordDecode(PacketDecoderDay, report.Bits, report.Packets, elapsed)
	observability.LogDecode(logs.Logger(), observability.DecodeEvent{
		Day:      PacketDecoderDay,
		Digest:   report.Digest,
		Bits:     report.Bits,
		Packets:  report.Packets,
		Duration: elapsed,
	})
	return report, nil
}

// normalize drops surrounding whitespace and interior line breaks so that
// digests do not depend on how the input file was wrapped.
func normalize(input string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(strings.TrimSpace(input))
}
