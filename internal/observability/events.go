package observability

import (
	"time"

	"github.com/rs/zerolog"
)

// DecodeEvent describes one solve attempt for structured logging.
type DecodeEvent struct {
	Day      int
	Digest   string
	Bits     int
	Packets  int
	Duration time.Duration
	Err      error
	Kind     string
}

// LogDecode writes one "decode" event, at error level when the attempt
// failed.
func LogDecode(logger zerolog.Logger, ev DecodeEvent) {
	event := logger.Info()
	if ev.Err != nil {
		event = logger.Error().Err(ev.Err).Str("kind", ev.Kind)
	}

	event.
		Int("day", ev.Day).
		Str("digest", ev.Digest).
		Int("bits", ev.Bits).
		Int("packets", ev.Packets).
		Dur("duration", ev.Duration).
		Msg("decode")
}
