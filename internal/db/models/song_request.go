// Package models contains database model definitions.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestState is the fulfilment state of a song request.
type RequestState string

const (
	// StatePending is a request the KJ has not picked yet.
	StatePending RequestState = "Pending"
	// StateTaken is a request the KJ has queued up.
	StateTaken RequestState = "Taken"
)

// Valid reports whether s is one of the known states.
func (s RequestState) Valid() bool {
	return s == StatePending || s == StateTaken
}

// SongRequest is a single attendee song request.
type SongRequest struct {
	// ID is assigned by BeforeCreate.
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Name of the person requesting the song.
	Name string `gorm:"size:255;not null" json:"name"`
	// Song title.
	Song string `gorm:"size:255;not null" json:"song"`
	// Artist performing the song.
	Artist string `gorm:"size:255;not null" json:"artist"`
	// Message is an optional dedication.
	Message string `gorm:"size:1024" json:"message,omitempty"`
	// Status is Pending or Taken.
	Status RequestState `gorm:"type:varchar(16);not null;default:'Pending';index" json:"status"`
	// CreatedAt is set on insert and never updated.
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null;index" json:"createdAt"`
	// UpdatedAt tracks the last status change (managed by GORM).
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides GORM's default pluralized table naming.
func (SongRequest) TableName() string {
	return "song_requests"
}

// Normalize trims the free text fields and defaults the status.
func (r *SongRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Song = strings.TrimSpace(r.Song)
	r.Artist = strings.TrimSpace(r.Artist)
	r.Message = strings.TrimSpace(r.Message)

	if r.Status == "" {
		r.Status = StatePending
	}
}

// BeforeCreate assigns the identifier.
func (r *SongRequest) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	r.Normalize()

	return nil
}
