// Package request renders the attendee submission form and accepts its
// plain HTML post.
package request

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/kj-requests/kj-requests/internal/config"
	"github.com/kj-requests/kj-requests/internal/db/controller/songrequest"
	"github.com/kj-requests/kj-requests/internal/requestgate"
	"github.com/kj-requests/kj-requests/internal/web/handler"
	"github.com/kj-requests/kj-requests/internal/web/handler/api/requests"
	"github.com/kj-requests/kj-requests/internal/web/navigation"
)

const (
	// Path is the path to the request form.
	Path = handler.RootPath + "request"

	// TemplateName is the name of the request form template.
	TemplateName = "request/request"

	msgSubmitFailed = "Your request could not be saved, please try again."
	msgMissing      = "Name, song, and artist are required."
)

// Service is the request form handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	db   *gorm.DB
	gate *requestgate.Gate
}

// Handler is the request form handler.
var Handler = Service{}

// Init registers the request form routes.
func (s *Service) Init(router fiber.Router, deps *handler.Dependencies) error {
	if router == nil || deps == nil || deps.Cfg == nil || deps.DB == nil || deps.Gate == nil {
		return handler.ErrMissingDependency
	}

	s.cfg = deps.Cfg
	s.db = deps.DB
	s.gate = deps.Gate

	router.Get(Path, s.Get)
	router.Post(Path, s.Post)

	return nil
}

func (s *Service) render(c *fiber.Ctx, form requests.CreateInput, errMsg string, submitted bool) error {
	nav := navigation.NewContext(s.cfg.Title, "Request a Song", navigation.SectionRequest).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Request a Song", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Status":     s.gate.Read(c.UserContext()),
		"Form":       form,
		"Error":      errMsg,
		"Submitted":  submitted,
	}, handler.BaseLayout)
}

// Get renders the empty form, or the confirmation after a post.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, requests.CreateInput{}, "", c.Query("submitted") == "1")
}

// Post stores a form submission and redirects back to the form.
func (s *Service) Post(c *fiber.Ctx) error {
	var in requests.CreateInput
	if err := c.BodyParser(&in); err != nil {
		c.Status(fiber.StatusBadRequest)

		return s.render(c, in, msgMissing, false)
	}

	_, status, err := requests.Submit(c.UserContext(), s.db, in)
	if err != nil {
		c.Status(status)

		switch {
		case errors.Is(err, songrequest.ErrMissingField):
			return s.render(c, in, msgMissing, false)
		case status == fiber.StatusBadRequest:
			return s.render(c, in, err.Error(), false)
		default:
			return s.render(c, in, msgSubmitFailed, false)
		}
	}

	return c.Redirect(Path+"?submitted=1", fiber.StatusSeeOther)
}
