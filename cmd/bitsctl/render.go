package main

import (
	"fmt"
	"io"

	"github.com/danmuck/bitsctl/internal/codec"
	"github.com/danmuck/bitsctl/internal/solvers"
)

// document is the structured (yaml, cbor) form of a report.
type document struct {
	Day        int         `yaml:"day" cbor:"day"`
	Challenge  string      `yaml:"challenge" cbor:"challenge"`
	Part1      uint64      `yaml:"part1" cbor:"part1"`
	Part2      uint64      `yaml:"part2" cbor:"part2"`
	// Part2Exact carries part 2 in decimal when it does not fit in part2.
	Part2Exact string      `yaml:"part2_exact,omitempty" cbor:"part2_exact,omitempty"`
	Digest     string      `yaml:"digest" cbor:"digest"`
	Bits       int         `yaml:"bits" cbor:"bits"`
	Packets    int         `yaml:"packets" cbor:"packets"`
	Depth      int         `yaml:"depth" cbor:"depth"`
	Tree       *codec.Node `yaml:"tree,omitempty" cbor:"tree,omitempty"`
}

func newDocument(report solvers.Report, tree bool) document {
	doc := document{
		Day:       report.Day,
		Challenge: report.Challenge,
		Part1:     report.Part1,
		Part2:     report.Part2,
		Digest:    report.Digest,
		Bits:      report.Bits,
		Packets:   report.Packets,
		Depth:     report.Depth,
	}
	if report.Part2Exact != nil {
		doc.Part2Exact = report.Part2Exact.String()
	}
	if tree && report.Tree != nil {
		node := codec.FromPacket(report.Tree)
		doc.Tree = &node
	}
	return doc
}

func render(w io.Writer, format codec.Format, report solvers.Report, tree bool) error {
	if format != codec.FormatText {
		return codec.Write(w, format, newDocument(report, tree))
	}
	fmt.Fprintf(w, "--- Day %d: %s ---\n", report.Day, report.Challenge)
	fmt.Fprintf(w, "  Part 1: %d\n", report.Part1)
	fmt.Fprintf(w, "  Part 2: %s\n", report.Answer2())
	if tree && report.Tree != nil {
		fmt.Fprintf(w, "  Tree: %s\n", report.Tree)
	}
	return nil
}

// renderAll writes every report, as one sequence for structured formats.
func renderAll(w io.Writer, format codec.Format, reports []solvers.Report, tree bool) error {
	if format != codec.FormatText {
		docs := make([]document, 0, len(reports))
		for _, report := range reports {
			docs = append(docs, newDocument(report, tree))
		}
		return codec.Write(w, format, docs)
	}
	for _, report := range reports {
		if err := render(w, format, report, tree); err != nil {
			return err
		}
	}
	return nil
}
