package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kj-requests/kj-requests/internal/logger"
)

func TestInit(t *testing.T) {
	testCases := []struct {
		name             string
		cfg              logger.Log
		shouldHaveOutPut bool
		outPutIsJSON     bool
	}{
		{
			name: "no logger enabled log level not set",
			cfg: logger.Log{
				ServiceName: "test",
				AppName:     "test",
			},
		},
		{
			name: "console enabled console writer enabled",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer disabled info expect json",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
		{
			name: "trace with caller expect json stack",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "test",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := captureOutput(t, tc.cfg)

			if !tc.shouldHaveOutPut {
				assert.Empty(t, out)
				return
			}

			require.NotEmpty(t, out)

			if tc.outPutIsJSON {
				for _, line := range strings.Split(out, "\n") {
					if line == "" {
						continue
					}

					var entry map[string]any
					assert.NoError(t, json.Unmarshal([]byte(line), &entry), "line is not json: %s", line)
				}
			}
		})
	}
}

func TestInitErrors(t *testing.T) {
	err := logger.Init(logger.Log{LogLevel: "loud", ServiceName: "test", AppName: "test"})
	require.Error(t, err)

	err = logger.Init(logger.Log{LogLevel: "info", AppName: "test"})
	require.ErrorIs(t, err, logger.ErrServiceNameIsEmpty)

	err = logger.Init(logger.Log{LogLevel: "info", ServiceName: "test"})
	require.ErrorIs(t, err, logger.ErrAppNameIsEmpty)
}

func TestLevelWriter(t *testing.T) {
	var info, warn, errs, trace bytes.Buffer

	lw := &logger.LevelWriter{
		InfoWriter:  &info,
		WarnWriter:  &warn,
		ErrorWriter: &errs,
		TraceWriter: &trace,
	}

	levels := map[zerolog.Level]*bytes.Buffer{
		zerolog.DebugLevel: &info,
		zerolog.InfoLevel:  &info,
		zerolog.WarnLevel:  &warn,
		zerolog.ErrorLevel: &errs,
		zerolog.FatalLevel: &errs,
		zerolog.TraceLevel: &trace,
	}

	for level, buf := range levels {
		buf.Reset()

		_, err := lw.WriteLevel(level, []byte(level.String()))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), level.String())
	}

	n, err := lw.WriteLevel(zerolog.Disabled, []byte("dropped"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func captureOutput(t *testing.T, cfg logger.Log) string {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w
	os.Stderr = w

	// Init resolves os.Stdout when the console writer is built
	initErr := logger.Init(cfg)

	log.Info().Msg("this info message should be seen...")
	log.Error().Err(errors.New("a test error")).Msg("this err message should be seen...") //nolint:goerr113
	log.Trace().Msg("this trace message should be seen...")

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	os.Stderr = stderr

	require.NoError(t, initErr)

	return <-outC
}
