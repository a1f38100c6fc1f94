package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/bitsctl/internal/codec"
	logs "github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/protocol"
)

// Config is the bitsctl runtime configuration.
type Config struct {
	InputDir    string `toml:"input_dir"`
	Day         int    `toml:"day"`
	Output      string `toml:"output"`
	MaxDepth    int    `toml:"max_depth"`
	MaxPackets  int    `toml:"max_packets"`
	MetricsFile string `toml:"metrics_file"`
	LogLevel    string `toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	limits := protocol.DefaultLimits()
	return Config{
		InputDir:   "inputs",
		Day:        16,
		Output:     string(codec.FormatText),
		MaxDepth:   limits.MaxDepth,
		MaxPackets: limits.MaxPackets,
		LogLevel:   "info",
	}
}

// Load overlays the keys defined in path onto Default and validates the
// result. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("input_dir") {
		cfg.InputDir = strings.TrimSpace(raw.InputDir)
	}
	if meta.IsDefined("day") {
		cfg.Day = raw.Day
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("max_packets") {
		cfg.MaxPackets = raw.MaxPackets
	}
	if meta.IsDefined("metrics_file") {
		cfg.MetricsFile = strings.TrimSpace(raw.MetricsFile)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	logs.Debugf("config.Load path=%s day=%d output=%s", path, cfg.Day, cfg.Output)
	return cfg, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.InputDir) == "" {
		return fmt.Errorf("input_dir is required")
	}
	if cfg.Day < 1 || cfg.Day > 25 {
		return fmt.Errorf("day %d outside 1..25", cfg.Day)
	}
	if _, err := codec.ParseFormat(cfg.Output); err != nil {
		return err
	}
	if cfg.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive")
	}
	if cfg.MaxPackets <= 0 {
		return fmt.Errorf("max_packets must be positive")
	}
	if _, ok := logs.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	return nil
}
