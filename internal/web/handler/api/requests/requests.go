// Package requests serves the JSON surfaces for song requests: submission,
// date filtered listing and status updates.
package requests

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kj-requests/kj-requests/internal/config"
	"github.com/kj-requests/kj-requests/internal/db/controller/songrequest"
	"github.com/kj-requests/kj-requests/internal/db/models"
	"github.com/kj-requests/kj-requests/internal/metrics"
	"github.com/kj-requests/kj-requests/internal/web/handler"
)

const (
	// Path is the path of the song request collection.
	Path = "/requests"

	msgMissingFields = "Name, song, and artist are required"
	msgInvalidStatus = "Invalid status provided"
	msgNotFound      = "Song request not found"
	msgInvalidBody   = "Invalid request body"
)

// CreateInput is the submission payload.
type CreateInput struct {
	Name    string `json:"name"    form:"name"    validate:"required"`
	Song    string `json:"song"    form:"song"    validate:"required"`
	Artist  string `json:"artist"  form:"artist"  validate:"required"`
	Message string `json:"message" form:"message" validate:"max=1024"`
}

// Trim removes surrounding whitespace from every field.
func (in *CreateInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Song = strings.TrimSpace(in.Song)
	in.Artist = strings.TrimSpace(in.Artist)
	in.Message = strings.TrimSpace(in.Message)
}

// StatusInput is the status update payload.
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=Pending Taken"`
}

// Service is the song request API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the song request API handler.
var Handler = Service{}

// Init registers the song request routes.
func (s *Service) Init(router fiber.Router, deps *handler.Dependencies) error {
	if router == nil || deps == nil || deps.Cfg == nil || deps.DB == nil {
		return handler.ErrMissingDependency
	}

	s.cfg = deps.Cfg
	s.db = deps.DB

	router.Route(Path, func(r fiber.Router) {
		r.Post(handler.RootPath, s.Create)
		r.Get(handler.RootPath, s.List)
		r.Get("/:id", s.Get)
		r.Patch("/:id/status", s.UpdateStatus)
	})

	return nil
}

// Submit validates and stores a new request. It is shared with the HTML
// form. The returned status is the HTTP status to answer with.
func Submit(ctx context.Context, db *gorm.DB, in CreateInput) (*models.SongRequest, int, error) {
	in.Trim()

	if err := handler.Validator.Struct(in); err != nil {
		if in.Name == "" || in.Song == "" || in.Artist == "" {
			return nil, fiber.StatusBadRequest, songrequest.ErrMissingField
		}

		return nil, fiber.StatusBadRequest, errors.New(strings.Join(handler.ValidationMessages(err), "; ")) //nolint:goerr113
	}

	r := &models.SongRequest{
		Name:    in.Name,
		Song:    in.Song,
		Artist:  in.Artist,
		Message: in.Message,
	}

	if err := songrequest.Create(ctx, db, r); err != nil {
		if errors.Is(err, songrequest.ErrMissingField) {
			return nil, fiber.StatusBadRequest, err
		}

		log.Error().Err(err).Msg("failed to create song request")

		return nil, fiber.StatusInternalServerError, err
	}

	metrics.RequestsCreated.Inc()
	log.Info().Str("id", r.ID).Str("song", r.Song).Str("artist", r.Artist).Msg("song request created")

	return r, fiber.StatusCreated, nil
}

// Create handles POST /requests.
func (s *Service) Create(c *fiber.Ctx) error {
	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	r, status, err := Submit(c.UserContext(), s.db, in)
	if err != nil {
		if errors.Is(err, songrequest.ErrMissingField) {
			return handler.Fail(c, status, msgMissingFields)
		}

		return handler.Fail(c, status, err.Error())
	}

	return handler.OK(c, status, r)
}

// Location is the time zone date filters are evaluated in.
func (s *Service) Location() *time.Location {
	if s.cfg == nil {
		return time.UTC
	}

	return s.cfg.Requests.Location()
}

// List handles GET /requests?date=YYYY-MM-DD.
func (s *Service) List(c *fiber.Ctx) error {
	var window *songrequest.Window

	if date := strings.TrimSpace(c.Query("date")); date != "" {
		w, err := songrequest.Day(date, s.Location())
		if err != nil {
			return handler.Fail(c, fiber.StatusBadRequest, songrequest.ErrInvalidDate.Error())
		}

		window = w
	}

	requests, err := songrequest.List(c.UserContext(), s.db, window)
	if err != nil {
		log.Error().Err(err).Str("date", c.Query("date")).Msg("failed to list song requests")

		return handler.Fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return handler.OK(c, fiber.StatusOK, requests)
}

// Get handles GET /requests/:id.
func (s *Service) Get(c *fiber.Ctx) error {
	r, err := songrequest.Get(c.UserContext(), s.db, c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}

	return handler.OK(c, fiber.StatusOK, r)
}

// UpdateStatus handles PATCH /requests/:id/status.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	var in StatusInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, msgInvalidStatus)
	}

	if err := handler.Validator.Struct(in); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, msgInvalidStatus)
	}

	id := c.Params("id")

	r, err := songrequest.UpdateStatus(c.UserContext(), s.db, id, models.RequestState(in.Status))
	if err != nil {
		return s.fail(c, err)
	}

	metrics.StatusUpdates.WithLabelValues(in.Status).Inc()
	log.Info().Str("id", id).Str("status", in.Status).Msg("song request status updated")

	return handler.OK(c, fiber.StatusOK, r)
}

func (s *Service) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, songrequest.ErrRequestNotFound):
		return handler.Fail(c, fiber.StatusNotFound, msgNotFound)
	case errors.Is(err, songrequest.ErrInvalidState):
		return handler.Fail(c, fiber.StatusBadRequest, msgInvalidStatus)
	default:
		log.Error().Err(err).Str("id", c.Params("id")).Msg("song request operation failed")

		return handler.Fail(c, fiber.StatusInternalServerError, err.Error())
	}
}
