package config

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/danmuck/bitsctl/internal/codec"
	logs "github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/protocol"
)

func (c Config) Limits() protocol.Limits {
	return protocol.Limits{MaxDepth: c.MaxDepth, MaxPackets: c.MaxPackets}
}

// InputPath returns <input_dir>/<DD>.txt for day.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("%02d.txt", day))
}

// Format returns the parsed output format, text when Output does not
// pass Validate.
func (c Config) Format() codec.Format {
	f, err := codec.ParseFormat(c.Output)
	if err != nil {
		return codec.FormatText
	}
	return f
}

// Level returns the configured log level, defaulting to info.
func (c Config) Level() zerolog.Level {
	level, ok := logs.ParseLevel(c.LogLevel)
	if !ok {
		return zerolog.InfoLevel
	}
	return level
}
