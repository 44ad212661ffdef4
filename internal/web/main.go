// Package web wires the fiber application: middleware, static files, health
// and metrics endpoints, the JSON surfaces and the HTML pages.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kj-requests/kj-requests/internal/config"
	fiberlog "github.com/kj-requests/kj-requests/internal/logger/adapter/fiber"
	"github.com/kj-requests/kj-requests/internal/requestgate"
	"github.com/kj-requests/kj-requests/internal/web/handler"
	"github.com/kj-requests/kj-requests/internal/web/handler/admin"
	"github.com/kj-requests/kj-requests/internal/web/handler/api/requests"
	"github.com/kj-requests/kj-requests/internal/web/handler/api/requeststatus"
	"github.com/kj-requests/kj-requests/internal/web/handler/home"
	"github.com/kj-requests/kj-requests/internal/web/handler/request"
)

const (
	// MetricsPath is where the prometheus registry is exposed.
	MetricsPath = "/metrics"

	// DefaultCheckAliveURI is used when the configuration names none.
	DefaultCheckAliveURI = "/checkalive"
)

var (
	// ErrConfigNil is returned by New without a configuration.
	ErrConfigNil = errors.New("config cannot be nil")
	// ErrDBNil is returned by New without a database.
	ErrDBNil = errors.New("db cannot be nil")
	// ErrGateNil is returned by New without a request gate.
	ErrGateNil = errors.New("request gate cannot be nil")
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start listens on addr until the app is shut down.
func (s *Service) Start(addr string) error {
	s.alive.Store(true)

	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM and shuts the app down.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown fails the health check for the configured drain time, then stops
// the http server.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	if !s.fastShutDown && s.cfg.Webserver.ShutDownTime > 0 {
		log.Info().Msgf(
			"graceful shutdown: return 503 for %d seconds to let the LB remove this instance",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers the health check: 200 while serving, 503 while draining.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

func newTemplateEngine(cfg *config.Config) *html.Engine {
	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	engine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	loc := cfg.Requests.Location()

	engine.AddFunc("clock", func(t time.Time) string {
		return t.In(loc).Format("15:04")
	})

	return engine
}

// New creates the web service. fastShutDown skips the drain period.
func New(cfg *config.Config, db *gorm.DB, gate *requestgate.Gate, fastShutDown bool) (*Service, error) {
	switch {
	case cfg == nil:
		return nil, ErrConfigNil
	case db == nil:
		return nil, ErrDBNil
	case gate == nil:
		return nil, ErrGateNil
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          newTemplateEngine(cfg),
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(requestid.New())
	app.Use(fiberlog.New(fiberlog.Config{
		Config:        cfg.Log,
		CheckAliveURI: cfg.Webserver.CheckAliveURI,
	}))

	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	service := &Service{
		App:          app,
		cfg:          cfg,
		fastShutDown: fastShutDown,
	}
	service.alive.Store(true)

	checkAliveURI := cfg.Webserver.CheckAliveURI
	if checkAliveURI == "" {
		checkAliveURI = DefaultCheckAliveURI
	}

	app.Get(checkAliveURI, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	deps := &handler.Dependencies{Cfg: cfg, DB: db, Gate: gate}

	if err := registerAPI(app, deps); err != nil {
		return nil, err
	}

	if err := registerAPI(app.Group(handler.APIPrefix), deps); err != nil {
		return nil, err
	}

	for _, h := range []handler.Service{&home.Handler, &request.Handler, &admin.Handler} {
		if err := h.Init(app, deps); err != nil {
			return nil, err
		}
	}

	return service, nil
}

// registerAPI mounts the JSON surfaces on router.
func registerAPI(router fiber.Router, deps *handler.Dependencies) error {
	for _, h := range []handler.Service{&requests.Handler, &requeststatus.Handler} {
		if err := h.Init(router, deps); err != nil {
			return err
		}
	}

	return nil
}
