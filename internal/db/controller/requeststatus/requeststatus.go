// Package requeststatus stores the history of the requests open/closed flag.
package requeststatus

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/kj-requests/kj-requests/internal/db/models"
)

var (
	// ErrStatusNotFound is returned when no flag has been stored yet.
	ErrStatusNotFound = errors.New("request status not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

const latestOrder = "updated_at DESC, id DESC"

// Latest returns the most recently updated flag record.
func Latest(ctx context.Context, db *gorm.DB) (*models.RequestStatus, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var status models.RequestStatus

	result := db.WithContext(ctx).Order(latestOrder).First(&status)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrStatusNotFound
		}

		return nil, pkgerrors.Wrap(result.Error, "read latest request status")
	}

	return &status, nil
}

// SetLatest overwrites the latest flag record with open and at,
// or inserts the first record when the history is empty.
func SetLatest(ctx context.Context, db *gorm.DB, open bool, at time.Time) (*models.RequestStatus, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	at = at.UTC().Truncate(time.Millisecond)

	var status *models.RequestStatus

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		latest, err := Latest(ctx, tx)
		if errors.Is(err, ErrStatusNotFound) {
			status = &models.RequestStatus{Open: open, UpdatedAt: at}

			return pkgerrors.Wrap(tx.Create(status).Error, "create request status")
		}

		if err != nil {
			return err
		}

		// Select keeps a false Open from being skipped as a zero value
		result := tx.Model(latest).
			Select("Open", "UpdatedAt").
			Updates(models.RequestStatus{Open: open, UpdatedAt: at})
		if result.Error != nil {
			return pkgerrors.Wrap(result.Error, "update request status")
		}

		latest.Open = open
		latest.UpdatedAt = at
		status = latest

		return nil
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}
