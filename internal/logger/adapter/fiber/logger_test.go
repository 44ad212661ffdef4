package fiber_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kj-requests/kj-requests/internal/logger"
	adapter "github.com/kj-requests/kj-requests/internal/logger/adapter/fiber"
)

type accessLine struct {
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Error  string `json:"error"`
}

func newApp(cfg adapter.Config) *fiber.App {
	app := fiber.New()
	app.Use(adapter.New(cfg))

	app.Get("/requests", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/checkalive", func(c *fiber.Ctx) error {
		return c.SendString("alive")
	})
	app.Get("/broken", func(_ *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		disableCA  bool
		wantLine   bool
		wantStatus int
		wantURI    string
		wantErr    string
	}{
		{
			name:       "logs request with query",
			path:       "/requests?date=2025-06-01",
			wantLine:   true,
			wantStatus: fiber.StatusOK,
			wantURI:    "/requests?date=2025-06-01",
		},
		{
			name:       "logs handler error with its status",
			path:       "/broken",
			wantLine:   true,
			wantStatus: fiber.StatusTeapot,
			wantURI:    "/broken",
			wantErr:    "short and stout",
		},
		{
			name:       "check alive logged when not disabled",
			path:       "/checkalive",
			wantLine:   true,
			wantStatus: fiber.StatusOK,
			wantURI:    "/checkalive",
		},
		{
			name:      "check alive skipped when disabled",
			path:      "/checkalive",
			disableCA: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			app := newApp(adapter.Config{
				Config:        logger.Log{DisableCheckAlive: tt.disableCA},
				CheckAliveURI: "/checkalive",
				Output:        &buf,
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer func() {
				_ = resp.Body.Close()
			}()

			assert.NotEmpty(t, resp.Header.Get("X-Performance"))

			if !tt.wantLine {
				assert.Empty(t, buf.String())
				return
			}

			var line accessLine
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line))
			assert.Equal(t, tt.wantStatus, line.Status)
			assert.Equal(t, tt.wantURI, line.URI)
			assert.Equal(t, fiber.MethodGet, line.Method)
			assert.Equal(t, tt.wantErr, line.Error)
		})
	}
}

func TestNewSkipsWithNext(t *testing.T) {
	var buf bytes.Buffer

	app := newApp(adapter.Config{
		Next:   func(_ *fiber.Ctx) bool { return true },
		Output: &buf,
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/requests", nil))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, buf.String())
}
