package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripboard/internal/models/db_models"
)

type CalendarRepository interface {
	GetByIDForTrip(ctx context.Context, tripSlug string, calendarID uint) (*db_models.Calendar, error)
	FindByTripAndDate(ctx context.Context, tripID uuid.UUID, dt time.Time) (*db_models.Calendar, error)
	Create(ctx context.Context, calendar *db_models.Calendar) error
	Update(ctx context.Context, calendar *db_models.Calendar) error
	Delete(ctx context.Context, calendar *db_models.Calendar) error
}

func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

type calendarRepository struct {
	db *gorm.DB
}

// GetByIDForTrip resolves a calendar only when it belongs to the trip with
// the given slug. Ownership is a join filter, not an object traversal.
func (r *calendarRepository) GetByIDForTrip(ctx context.Context, tripSlug string, calendarID uint) (*db_models.Calendar, error) {
	var calendar db_models.Calendar
	err := r.db.WithContext(ctx).
		Joins("JOIN trips ON trips.id = calendars.trip_id").
		Where("calendars.id = ? AND trips.slug = ?", calendarID, tripSlug).
		Preload("Activities.Participants").
		First(&calendar).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &calendar, nil
}

func (r *calendarRepository) FindByTripAndDate(ctx context.Context, tripID uuid.UUID, dt time.Time) (*db_models.Calendar, error) {
	var calendar db_models.Calendar
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND dt = ?", tripID, dt).
		First(&calendar).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &calendar, nil
}

func (r *calendarRepository) Create(ctx context.Context, calendar *db_models.Calendar) error {
	return r.db.WithContext(ctx).Create(calendar).Error
}

// Update writes the calendar row only; loaded activities are not re-saved.
func (r *calendarRepository) Update(ctx context.Context, calendar *db_models.Calendar) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(calendar).Error
}

func (r *calendarRepository) Delete(ctx context.Context, calendar *db_models.Calendar) error {
	return r.db.WithContext(ctx).Delete(calendar).Error
}
