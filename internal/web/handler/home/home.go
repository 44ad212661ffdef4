// Package home renders the landing page.
package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kj-requests/kj-requests/internal/config"
	"github.com/kj-requests/kj-requests/internal/requestgate"
	"github.com/kj-requests/kj-requests/internal/web/handler"
	"github.com/kj-requests/kj-requests/internal/web/navigation"
)

const (
	// Path is the path to the landing page.
	Path = handler.RootPath

	// TemplateName is the name of the landing page template.
	TemplateName = "home/home"
)

// Service is the landing page handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	gate *requestgate.Gate
}

// Handler is the landing page handler.
var Handler = Service{}

// Init registers the landing page route.
func (s *Service) Init(router fiber.Router, deps *handler.Dependencies) error {
	if router == nil || deps == nil || deps.Cfg == nil || deps.Gate == nil {
		return handler.ErrMissingDependency
	}

	s.cfg = deps.Cfg
	s.gate = deps.Gate

	router.Get(Path, s.Get)

	return nil
}

// Get renders the landing page.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext(s.cfg.Title, s.cfg.Title, navigation.SectionHome)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Status":     s.gate.Read(c.UserContext()),
	}, handler.BaseLayout)
}
