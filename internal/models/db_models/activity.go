package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Activity struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug       string    `gorm:"uniqueIndex;not null"`
	Title      string    `gorm:"not null"`
	CalendarID uint      `gorm:"not null"`

	// The join table's composite primary key rejects double-adds that
	// slip past the service pre-check.
	Participants []Participant `gorm:"many2many:activity_participant;constraint:OnDelete:CASCADE"`
	Expense      *Expense      `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
