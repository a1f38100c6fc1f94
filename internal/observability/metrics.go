package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	registry = prometheus.NewRegistry()

	decodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bitsctl",
			Subsystem: "decode",
			Name:      "total",
			Help:      "Transmissions decoded, by outcome.",
		},
		[]string{"day", "result"},
	)
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bitsctl",
			Subsystem: "decode",
			Name:      "errors_total",
			Help:      "Failed decodes by error kind.",
		},
		[]string{"day", "kind"},
	)
	decodeBits = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bitsctl",
			Subsystem: "decode",
			Name:      "input_bits",
			Help:      "Size of decoded transmissions in bits.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		},
		[]string{"day"},
	)
	decodePackets = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bitsctl",
			Subsystem: "decode",
			Name:      "packets",
			Help:      "Packets per decoded transmission.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"day"},
	)
	decodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bitsctl",
			Subsystem: "decode",
			Name:      "duration_seconds",
			Help:      "Decode and evaluation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"day"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		registry.MustRegister(decodes, decodeErrors, decodeBits, decodePackets, decodeDuration)
	})
}

// Gatherer exposes the metrics registry.
func Gatherer() prometheus.Gatherer {
	RegisterMetrics()
	return registry
}

func RecordDecode(day, bits, packets int, duration time.Duration) {
	RegisterMetrics()
	dayLabel := strconv.Itoa(day)
	decodes.WithLabelValues(dayLabel, "ok").Inc()
	decodeBits.WithLabelValues(dayLabel).Observe(float64(bits))
	decodePackets.WithLabelValues(dayLabel).Observe(float64(packets))
	decodeDuration.WithLabelValues(dayLabel).Observe(duration.Seconds())
}

func RecordDecodeError(day int, kind string, duration time.Duration) {
	RegisterMetrics()
	dayLabel := strconv.Itoa(day)
	decodes.WithLabelValues(dayLabel, "error").Inc()
	decodeErrors.WithLabelValues(dayLabel, kind).Inc()
	decodeDuration.WithLabelValues(dayLabel).Observe(duration.Seconds())
}

// WriteTextfile writes every registered metric to path in the text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(path string) error {
	RegisterMetrics()
	return prometheus.WriteToTextfile(path, registry)
}
