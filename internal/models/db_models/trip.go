package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trip is the root of the ownership chain. At most one trip is active at a
// time; the services enforce that by clearing every flag before setting one.
type Trip struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug     string    `gorm:"uniqueIndex;not null"`
	Title    string    `gorm:"not null"`
	IsActive bool      `gorm:"not null;default:false"`

	Calendars    []Calendar    `gorm:"constraint:OnDelete:CASCADE"`
	Participants []Participant `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
