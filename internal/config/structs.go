package config

import (
	"github.com/kj-requests/kj-requests/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Requests  Requests
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	CheckAliveURI  string // health check path, excluded from the access log when Log.DisableCheckAlive is set
}

// Requests holds the song request settings.
type Requests struct {
	// Timezone is the IANA location used to turn a date filter into a day window.
	Timezone string
	// FallbackOpen is the open flag value used until the store has answered once.
	FallbackOpen bool
}
