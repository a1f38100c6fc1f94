// bitsctl decodes BITS transmissions and prints the puzzle answers for a
// day: the version sum of every packet and the value of the expression the
// outermost packet encodes.
//
// Usage:
//
//	bitsctl [flags] [DAY]
//
// Without --input or --hex the transmission is read from
// <input_dir>/<DD>.txt. With --all every registered day is solved from its
// input file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/danmuck/bitsctl/internal/config"
	logs "github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/danmuck/bitsctl/internal/solvers"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bitsctl: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	input       string
	hex         string
	output      string
	tree        bool
	metricsFile string
	list        bool
	all         bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("bitsctl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "path to a bitsctl TOML config")
	flagSet.StringVarP(&opts.input, "input", "i", "", "input file, or - for stdin")
	flagSet.StringVar(&opts.hex, "hex", "", "decode this transmission instead of reading a file")
	flagSet.StringVarP(&opts.output, "output", "o", "", "output format: text|yaml|cbor")
	flagSet.BoolVar(&opts.tree, "tree", false, "include the decoded expression")
	flagSet.StringVar(&opts.metricsFile, "metrics-file", "", "write prometheus metrics to this file")
	flagSet.BoolVar(&opts.list, "list", false, "list available days and exit")
	flagSet.BoolVar(&opts.all, "all", false, "solve every available day from input_dir")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logs.ConfigureRuntime()

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if _, ok := os.LookupEnv(logs.EnvLogLevel); !ok {
		logs.SetLevel(cfg.Level())
	}
	if flagSet.Changed("output") {
		cfg.Output = opts.output
	}
	if flagSet.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}

	switch rest := flagSet.Args(); len(rest) {
	case 0:
	case 1:
		day, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("invalid day %q", rest[0])
		}
		cfg.Day = day
	default:
		return fmt.Errorf("unexpected argument: %s", rest[1])
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	registry := solvers.Default(cfg.Limits())
	if opts.list {
		for _, meta := range registry.ListMetadata() {
			fmt.Fprintf(stdout, "%2d  %s\n", meta.Day, meta.Name)
		}
		return nil
	}

	var days []int
	if opts.all {
		if opts.hex != "" || opts.input != "" || len(flagSet.Args()) > 0 {
			return fmt.Errorf("--all reads input_dir and takes no --hex, --input or DAY")
		}
		for _, meta := range registry.ListMetadata() {
			days = append(days, meta.Day)
		}
	} else {
		days = []int{cfg.Day}
	}

	reports := make([]solvers.Report, 0, len(days))
	var solveErr error
	for _, day := range days {
		report, err := solveDay(registry, day, opts, cfg, stdin)
		if err != nil {
			solveErr = err
			break
		}
		reports = append(reports, report)
	}
	if cfg.MetricsFile != "" {
		if err := observability.WriteTextfile(cfg.MetricsFile); err != nil {
			logs.Warnf("bitsctl metrics write failed path=%s err=%v", cfg.MetricsFile, err)
		}
	}
	if solveErr != nil {
		return solveErr
	}
	if opts.all {
		return renderAll(stdout, cfg.Format(), reports, opts.tree)
	}
	return render(stdout, cfg.Format(), reports[0], opts.tree)
}

func solveDay(registry *solvers.Registry, day int, opts options, cfg config.Config, stdin io.Reader) (solvers.Report, error) {
	solver, err := registry.Resolve(day)
	if err != nil {
		return solvers.Report{}, err
	}
	input, err := readInput(opts, cfg, day, stdin)
	if err != nil {
		return solvers.Report{}, err
	}
	report, err := solver.Solve(input)
	if err != nil {
		return solvers.Report{}, fmt.Errorf("day %d: %w", day, err)
	}
	return report, nil
}

func readInput(opts options, cfg config.Config, day int, stdin io.Reader) (string, error) {
	if opts.hex != "" {
		return opts.hex, nil
	}
	if opts.input == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	path := opts.input
	if path == "" {
		path = cfg.InputPath(day)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	logs.Debugf("bitsctl input path=%s bytes=%d", path, len(data))
	return strings.TrimRight(string(data), "\r\n"), nil
}
