// Package admin renders the KJ dashboard: the requests of one day and the
// open/closed toggle. Updates from the page go through the JSON surfaces.
package admin

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kj-requests/kj-requests/internal/config"
	"github.com/kj-requests/kj-requests/internal/db/controller/songrequest"
	"github.com/kj-requests/kj-requests/internal/db/models"
	"github.com/kj-requests/kj-requests/internal/requestgate"
	"github.com/kj-requests/kj-requests/internal/web/handler"
	"github.com/kj-requests/kj-requests/internal/web/navigation"
)

const (
	// Path is the path to the dashboard.
	Path = handler.RootPath + "admin"

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/admin"

	msgLoadFailed = "Song requests could not be loaded."
)

// Data is handed to the dashboard template.
type Data struct {
	Date     string
	Requests []models.SongRequest
	Pending  int
	Status   requestgate.State
	Error    string
	APIBase  string
	Timezone string
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	db   *gorm.DB
	gate *requestgate.Gate
	now  func() time.Time
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init registers the dashboard route.
func (s *Service) Init(router fiber.Router, deps *handler.Dependencies) error {
	if router == nil || deps == nil || deps.Cfg == nil || deps.DB == nil || deps.Gate == nil {
		return handler.ErrMissingDependency
	}

	s.cfg = deps.Cfg
	s.db = deps.DB
	s.gate = deps.Gate

	if s.now == nil {
		s.now = time.Now
	}

	router.Get(Path, s.Get)

	return nil
}

// Get renders the requests of ?date=YYYY-MM-DD, today by default.
func (s *Service) Get(c *fiber.Ctx) error {
	loc := s.cfg.Requests.Location()

	nav := navigation.NewContext(s.cfg.Title, "KJ Dashboard", navigation.SectionAdmin).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("KJ Dashboard", Path, true)

	data := Data{
		Date:     strings.TrimSpace(c.Query("date")),
		Requests: []models.SongRequest{},
		Status:   s.gate.Read(c.UserContext()),
		APIBase:  handler.APIPrefix,
		Timezone: loc.String(),
	}

	if data.Date == "" {
		data.Date = s.now().In(loc).Format(songrequest.DateLayout)
	}

	window, err := songrequest.Day(data.Date, loc)
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		data.Error = songrequest.ErrInvalidDate.Error()

		return s.render(c, nav, &data)
	}

	list, err := songrequest.List(c.UserContext(), s.db, window)
	if err != nil {
		log.Error().Err(err).Str("date", data.Date).Msg("failed to load dashboard requests")

		c.Status(fiber.StatusInternalServerError)
		data.Error = msgLoadFailed

		return s.render(c, nav, &data)
	}

	data.Requests = list

	for i := range list {
		if list[i].Status == models.StatePending {
			data.Pending++
		}
	}

	return s.render(c, nav, &data)
}

func (s *Service) render(c *fiber.Ctx, nav *navigation.Context, data *Data) error {
	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Data":       data,
	}, handler.BaseLayout)
}
