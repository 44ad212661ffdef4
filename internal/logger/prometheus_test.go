package logger

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusHook(t *testing.T) {
	hook := NewPrometheusHook("kj-requests-test")
	warn := hook.counter.WithLabelValues(zerolog.WarnLevel.String())
	before := testutil.ToFloat64(warn)

	hook.Run(nil, zerolog.WarnLevel, "")
	hook.Run(nil, zerolog.NoLevel, "")

	assert.InDelta(t, before+1, testutil.ToFloat64(warn), 0)

	// a second hook shares the registered counter
	assert.Same(t, hook.counter, NewPrometheusHook("other").counter)
}
