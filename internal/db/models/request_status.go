package models

import "time"

// RequestStatus is one entry of the requests open/closed history.
// The row with the latest UpdatedAt is the current value.
type RequestStatus struct {
	ID        uint64    `gorm:"primaryKey"`
	Open      bool      `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null;index"`
}

// TableName overrides GORM's default pluralized table naming.
func (RequestStatus) TableName() string {
	return "request_statuses"
}

// All returns every model the application migrates.
func All() []any {
	return []any{
		&SongRequest{},
		&RequestStatus{},
	}
}
