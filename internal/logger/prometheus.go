package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	statementsOnce sync.Once
	statements     *prometheus.CounterVec //nolint:gochecknoglobals
)

// PrometheusHook counts log statements per level.
type PrometheusHook struct {
	counter *prometheus.CounterVec
}

// Run implements zerolog.Hook.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel && h.counter != nil {
		h.counter.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook returns the hook behind log_statements_total. The
// counter is registered once per process; later calls reuse it and keep the
// first service label.
func NewPrometheusHook(serviceName string) PrometheusHook {
	statementsOnce.Do(func() {
		statements = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "log_statements_total",
				Help:        "Number of log statements, differentiated by log level.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"level"},
		)
	})

	return PrometheusHook{counter: statements}
}
