package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Participant belongs to one trip. Name uniqueness within the trip is a
// case- and whitespace-insensitive service rule, not a column constraint.
type Participant struct {
	ID     uint      `gorm:"primaryKey;autoIncrement"`
	Name   string    `gorm:"not null"`
	TripID uuid.UUID `gorm:"type:uuid;not null"`

	Activities []Activity `gorm:"many2many:activity_participant"`

	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}
