// Package songrequest provides the record store for attendee song requests.
package songrequest

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/kj-requests/kj-requests/internal/db/models"
)

// DateLayout is the calendar day format accepted by the date filter.
const DateLayout = "2006-01-02"

var (
	// ErrRequestNotFound is returned when no request has the given ID.
	ErrRequestNotFound = errors.New("song request not found")
	// ErrMissingField is returned when name, song or artist is empty.
	ErrMissingField = errors.New("name, song, and artist are required")
	// ErrInvalidState is returned for a status other than Pending or Taken.
	ErrInvalidState = errors.New("invalid status provided")
	// ErrInvalidDate is returned when a date filter is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// now is replaced in tests.
var now = time.Now

// Window is a half open time range [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

// Day returns the 24 hour window starting at midnight of the given
// YYYY-MM-DD date in loc.
func Day(date string, loc *time.Location) (*Window, error) {
	if loc == nil {
		loc = time.UTC
	}

	start, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return nil, pkgerrors.Wrapf(ErrInvalidDate, "got %q", date)
	}

	return &Window{From: start, To: start.AddDate(0, 0, 1)}, nil
}

// Create validates and inserts a new request. Status is always Pending and
// CreatedAt is set to the current time; both are written back into r.
func Create(ctx context.Context, db *gorm.DB, r *models.SongRequest) error {
	if db == nil {
		return ErrDBNil
	}

	r.ID = ""
	r.Status = models.StatePending
	r.Normalize()

	if r.Name == "" || r.Song == "" || r.Artist == "" {
		return ErrMissingField
	}

	// stored in UTC at millisecond precision so range filters compare consistently
	r.CreatedAt = now().UTC().Truncate(time.Millisecond)
	r.UpdatedAt = r.CreatedAt

	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return pkgerrors.Wrap(err, "create song request")
	}

	return nil
}

// Get retrieves a request by its ID.
func Get(ctx context.Context, db *gorm.DB, id string) (*models.SongRequest, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var r models.SongRequest

	result := db.WithContext(ctx).Where("id = ?", id).First(&r)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}

		return nil, pkgerrors.Wrap(result.Error, "get song request")
	}

	return &r, nil
}

// List returns the requests created inside w, or all requests when w is nil,
// newest first.
func List(ctx context.Context, db *gorm.DB, w *Window) ([]models.SongRequest, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.WithContext(ctx).Model(&models.SongRequest{})
	if w != nil {
		query = query.Where("created_at >= ? AND created_at < ?", w.From.UTC(), w.To.UTC())
	}

	requests := make([]models.SongRequest, 0)
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list song requests")
	}

	return requests, nil
}

// UpdateStatus sets the status of one request and leaves every other
// field untouched. Setting the current status again is a no-op.
func UpdateStatus(ctx context.Context, db *gorm.DB, id string, state models.RequestState) (*models.SongRequest, error) {
	if !state.Valid() {
		return nil, ErrInvalidState
	}

	r, err := Get(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if r.Status == state {
		return r, nil
	}

	result := db.WithContext(ctx).Model(r).Update("status", state)
	if result.Error != nil {
		return nil, pkgerrors.Wrap(result.Error, "update song request status")
	}

	if result.RowsAffected == 0 {
		return nil, ErrRequestNotFound
	}

	r.Status = state

	return r, nil
}
