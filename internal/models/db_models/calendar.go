package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Calendar is one day of a trip. The (trip_id, dt) unique index is the
// backstop behind the service-level same-date pre-check.
type Calendar struct {
	ID     uint      `gorm:"primaryKey;autoIncrement"`
	Dt     time.Time `gorm:"not null;uniqueIndex:idx_calendars_trip_dt"`
	TripID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_calendars_trip_dt"`

	Activities []Activity `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}
