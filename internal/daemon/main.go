// Package daemon assembles the service from its configuration and runs it.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/kj-requests/kj-requests/internal/config"
	"github.com/kj-requests/kj-requests/internal/db"
	"github.com/kj-requests/kj-requests/internal/logger"
	"github.com/kj-requests/kj-requests/internal/requestgate"
	"github.com/kj-requests/kj-requests/internal/web"
)

// ErrConfigNil is returned by New without a configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	connector  *db.Connector
	webService *web.Service
}

// New initialises logging, opens the database and builds the web service.
// The database must be reachable at start up; later outages are handled per
// request.
func New(cfg *config.Config, fastShutDown bool) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}

	connector := db.NewConnector(&cfg.DB)

	gdb, err := connector.DB()
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", cfg.DB.GormEngine)
	}

	gate := requestgate.New(gdb, cfg.Requests.FallbackOpen)

	webService, err := web.New(cfg, gdb, gate, fastShutDown)
	if err != nil {
		_ = connector.Close()

		return nil, errors.Wrap(err, "create web service")
	}

	return &Daemon{
		cfg:        cfg,
		connector:  connector,
		webService: webService,
	}, nil
}

// Start serves until SIGINT or SIGTERM, then drains and closes the database.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)

	listenErr := make(chan error, 1)

	go func() {
		log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting http server")

		listenErr <- d.webService.Start(addr)
	}()

	shutdown := make(chan struct{})

	go func() {
		d.webService.WaitShutdown()
		close(shutdown)
	}()

	var err error

	select {
	case err = <-listenErr:
		if err != nil {
			err = errors.Wrap(err, "http server")
		}
	case <-shutdown:
		err = <-listenErr
	}

	if cerr := d.connector.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close database")
	}

	return err
}
