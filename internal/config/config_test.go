package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectConfigPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err, "failed to get project root")

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title, "Config.Title should not be empty")
	assert.NotZero(t, cfg.Webserver.Port, "Webserver.Port should not be 0")
	assert.NotEmpty(t, cfg.Webserver.URL, "Webserver.URL should not be empty")
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, "UTC", cfg.Requests.Timezone)
	assert.True(t, cfg.Requests.FallbackOpen)
	assert.Equal(t, "kj-requests", cfg.Log.AppName)
	assert.True(t, cfg.Log.Console.Enabled)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
			},
			wantErr: ErrEmptyURL,
		},
		{
			name: "unknown engine",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
				DB:        DB{GormEngine: "mongodb"},
			},
			wantErr: ErrUnknownGormEngine,
		},
		{
			name: "bad timezone",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
				Requests:  Requests{Timezone: "Not/AZone"},
			},
			wantErr: ErrInvalidTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := Config{Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"}}

	require.NoError(t, validate(&cfg))

	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, "UTC", cfg.Requests.Timezone)
	assert.Equal(t, defaultShutDownTime, cfg.Webserver.ShutDownTime)
	assert.Equal(t, defaultCheckAliveURI, cfg.Webserver.CheckAliveURI)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	// Set JSON override environment variable
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090},"Requests":{"FallbackOpen":false}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, "Test Override", cfg.Title)
	assert.Equal(t, 9090, cfg.Webserver.Port)
	assert.False(t, cfg.Requests.FallbackOpen)
	// untouched keys survive the merge
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL)
}

func TestReadConfigWithBrokenJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(projectConfigPath(t))
	require.Error(t, err)
}

func TestRequestsLocation(t *testing.T) {
	assert.Equal(t, time.UTC, Requests{}.Location())
	assert.Equal(t, time.UTC, Requests{Timezone: "Not/AZone"}.Location())
	assert.Equal(t, "UTC", Requests{Timezone: "UTC"}.Location().String())
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	tomlStr, err := DumpConfig(&cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tomlStr)

	// Check if output contains expected values
	assert.True(t, strings.Contains(tomlStr, "Test"), "DumpConfig() output should contain Title")
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	require.NoError(t, err)
	require.NotEmpty(t, jsonStr)

	assert.Contains(t, jsonStr, `"Title": "Test"`)
}
