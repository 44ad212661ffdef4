package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormEngine names an unsupported driver.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be one of mysql, postgres, sqlite")

	// ErrInvalidTimezone error if config requests.timezone can not be loaded.
	ErrInvalidTimezone = errors.New("toml config requests.timezone is not a valid IANA location")
)
