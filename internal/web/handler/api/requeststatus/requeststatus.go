// Package requeststatus serves the requests open/closed toggle.
package requeststatus

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kj-requests/kj-requests/internal/requestgate"
	"github.com/kj-requests/kj-requests/internal/web/handler"
)

const (
	// Path is the path of the open flag.
	Path = "/request-status"

	msgNotBoolean  = "'open' must be a boolean."
	msgInvalidBody = "Invalid request body."
)

// Input is the toggle payload. A pointer tells an absent field from false.
type Input struct {
	Open *bool `json:"open" validate:"required"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Service is the open flag handler service.
type Service struct {
	handler.Service
	gate *requestgate.Gate
}

// Handler is the open flag handler.
var Handler = Service{}

// Init registers the open flag routes.
func (s *Service) Init(router fiber.Router, deps *handler.Dependencies) error {
	if router == nil || deps == nil || deps.Gate == nil {
		return handler.ErrMissingDependency
	}

	s.gate = deps.Gate

	router.Get(Path, s.Get)
	router.Patch(Path, s.Patch)

	return nil
}

// Get handles GET /request-status.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(s.gate.Read(c.UserContext()))
}

// Patch handles PATCH /request-status.
func (s *Service) Patch(c *fiber.Ctx) error {
	var in Input
	if err := c.BodyParser(&in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: msgNotBoolean})
		}

		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: msgInvalidBody})
	}

	if err := handler.Validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: msgNotBoolean})
	}

	return c.JSON(s.gate.Write(c.UserContext(), *in.Open))
}
