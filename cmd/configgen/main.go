package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/danmuck/bitsctl/internal/config"
	logs "github.com/danmuck/bitsctl/internal/logging"
)

const defaultPath = "bitsctl.toml"

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "configgen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	flagSet := pflag.NewFlagSet("configgen", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	output := flagSet.StringP("output", "o", defaultPath, "output path for config template")
	validate := flagSet.Bool("validate", false, "validate an existing config file")
	input := flagSet.StringP("input", "i", "", "config path for validation (defaults to --output)")
	force := flagSet.BoolP("force", "f", false, "overwrite existing config file")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	logs.ConfigureRuntime()

	if *validate {
		path := *input
		if path == "" {
			path = *output
		}
		if _, err := config.Load(path); err != nil {
			return err
		}
		logs.Infof("validated config at %s", path)
		return nil
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		return err
	}
	logs.Infof("wrote config template to %s", *output)
	return nil
}
