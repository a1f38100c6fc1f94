package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/bitsctl/internal/codec"
	"github.com/danmuck/bitsctl/internal/protocol"
	"github.com/danmuck/bitsctl/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadOverlaysDefinedKeys(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
input_dir = "puzzles"
output = "yaml"
max_depth = 64
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.InputDir = "puzzles"
	want.Output = "yaml"
	want.MaxDepth = 64
	require.Equal(t, want, cfg)
	require.Equal(t, codec.FormatYAML, cfg.Format())
	require.Equal(t, protocol.Limits{MaxDepth: 64, MaxPackets: 1 << 20}, cfg.Limits())
	require.Equal(t, filepath.Join("puzzles", "16.txt"), cfg.InputPath(cfg.Day))
	require.Equal(t, filepath.Join("puzzles", "03.txt"), cfg.InputPath(3))
}

func TestLoadTemplate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "bitsctl.toml")
	require.NoError(t, WriteTemplate(path, false))
	require.Error(t, WriteTemplate(path, false), "existing file must not be overwritten")
	require.NoError(t, WriteTemplate(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	testlog.Start(t)
	_, err := Load(writeConfig(t, "day = 16\nmax_dept = 3\n"))
	require.ErrorContains(t, err, "max_dept")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testlog.Start(t)
	cases := map[string]string{
		"bad output":   `output = "json"`,
		"zero depth":   `max_depth = 0`,
		"neg packets":  `max_packets = -1`,
		"late day":     `day = 26`,
		"empty dir":    `input_dir = " "`,
		"bad level":    `log_level = "loud"`,
		"wrong type":   `day = "sixteen"`,
		"missing file": "",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.toml")
			if body != "" {
				path = writeConfig(t, body)
			}
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestFormatFallsBackToText(t *testing.T) {
	cfg := Default()
	cfg.Output = "cbor"
	require.Equal(t, codec.FormatCBOR, cfg.Format())
	cfg.Output = "json"
	require.Error(t, Validate(cfg))
	require.Equal(t, codec.FormatText, cfg.Format())
}

func TestLevelFallsBackToInfo(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	require.Equal(t, zerolog.DebugLevel, cfg.Level())
	cfg.LogLevel = ""
	require.Equal(t, zerolog.InfoLevel, cfg.Level())
}
