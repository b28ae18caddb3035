package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is the at-most-one expense record of an activity.
//
// DeletedAt on the expense tables is a plain nullable column, not
// gorm.DeletedAt: nothing reads it, and gorm's soft-delete type would start
// filtering queries against it.
type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	TotalAmount float64   `gorm:"not null"`
	ActivityID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	Payments []ExpensePayment `gorm:"constraint:OnDelete:CASCADE"`
	Splits   []ExpenseSplit   `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
	DeletedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// ExpensePayment records what a participant actually paid toward an expense.
type ExpensePayment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug          string    `gorm:"uniqueIndex;not null"`
	ExpenseID     uuid.UUID `gorm:"type:uuid;not null"`
	ParticipantID uint      `gorm:"not null"`
	AmountPaid    float64   `gorm:"not null"`

	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
	DeletedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (p *ExpensePayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ExpenseSplit records a participant's owed share of an expense.
type ExpenseSplit struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug          string    `gorm:"uniqueIndex;not null"`
	ExpenseID     uuid.UUID `gorm:"type:uuid;not null"`
	ParticipantID uint      `gorm:"not null"`
	AmountOwed    float64   `gorm:"not null"`

	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
	DeletedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (s *ExpenseSplit) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
