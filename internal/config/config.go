// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvConfigJSON names the environment variable merged over the TOML file.
	EnvConfigJSON = "KJ_REQUESTS_CONFIG_JSON"

	defaultShutDownTime  = 5
	defaultTimezone      = "UTC"
	defaultCheckAliveURI = "/checkalive"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(path, "main.toml"))
	v.SetConfigType("toml")
	v.SetDefault("Requests.FallbackOpen", true)
	v.SetDefault("Requests.Timezone", defaultTimezone)

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config override")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Location returns the time zone date filters are evaluated in.
// An empty or unknown timezone falls back to UTC.
func (r Requests) Location() *time.Location {
	if r.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// validate minimal config settings and fill in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres, EngineSQLite:
	case "":
		c.DB.GormEngine = EngineSQLite
	default:
		return errors.Wrapf(ErrUnknownGormEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	if c.Requests.Timezone == "" {
		c.Requests.Timezone = defaultTimezone
	}

	if _, err := time.LoadLocation(c.Requests.Timezone); err != nil {
		return errors.Wrapf(ErrInvalidTimezone, "%s: %q", invalidErrMessage, c.Requests.Timezone)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.CheckAliveURI == "" {
		c.Webserver.CheckAliveURI = defaultCheckAliveURI
	}

	return nil
}
