package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tripboard/internal/models/db_models"
	"tripboard/internal/models/response_models"
	"tripboard/internal/repositories"
	"tripboard/pkg/utils"
)

type CalendarServiceInterface interface {
	GetByID(ctx context.Context, tripSlug string, calendarID uint) (*response_models.CalendarResponse, error)
	Create(ctx context.Context, tripSlug string, dt time.Time) (*response_models.CalendarResponse, error)
	Update(ctx context.Context, tripSlug string, calendarID uint, dt time.Time) (*response_models.CalendarResponse, error)
	Delete(ctx context.Context, tripSlug string, calendarID uint) error
}

type CalendarService struct {
	tripRepo     repositories.TripRepository
	calendarRepo repositories.CalendarRepository
}

func NewCalendarService(tripRepo repositories.TripRepository, calendarRepo repositories.CalendarRepository) CalendarServiceInterface {
	return &CalendarService{tripRepo: tripRepo, calendarRepo: calendarRepo}
}

func (s *CalendarService) getCalendar(ctx context.Context, tripSlug string, calendarID uint) (*db_models.Calendar, error) {
	calendar, err := s.calendarRepo.GetByIDForTrip(ctx, tripSlug, calendarID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if calendar == nil {
		return nil, utils.ErrCalendarNotFound
	}
	return calendar, nil
}

func (s *CalendarService) GetByID(ctx context.Context, tripSlug string, calendarID uint) (*response_models.CalendarResponse, error) {
	calendar, err := s.getCalendar(ctx, tripSlug, calendarID)
	if err != nil {
		return nil, err
	}
	return response_models.BuildCalendarResponse(calendar), nil
}

// Create enforces one calendar per date per trip: pre-check for the clean
// error, (trip_id, dt) unique index for the race.
func (s *CalendarService) Create(ctx context.Context, tripSlug string, dt time.Time) (*response_models.CalendarResponse, error) {
	trip, err := s.tripRepo.GetBySlug(ctx, tripSlug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	existing, err := s.calendarRepo.FindByTripAndDate(ctx, trip.ID, dt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrCalendarDateTaken
	}

	calendar := &db_models.Calendar{Dt: dt, TripID: trip.ID}
	if err := s.calendarRepo.Create(ctx, calendar); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrCalendarDateTaken
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildCalendarResponse(calendar), nil
}

// Update overwrites the date without re-checking siblings; the unique index
// still rejects an exact collision at commit.
func (s *CalendarService) Update(ctx context.Context, tripSlug string, calendarID uint, dt time.Time) (*response_models.CalendarResponse, error) {
	calendar, err := s.getCalendar(ctx, tripSlug, calendarID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	calendar.Dt = dt
	calendar.UpdatedAt = &now

	if err := s.calendarRepo.Update(ctx, calendar); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrCalendarDateTaken
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildCalendarResponse(calendar), nil
}

func (s *CalendarService) Delete(ctx context.Context, tripSlug string, calendarID uint) error {
	calendar, err := s.getCalendar(ctx, tripSlug, calendarID)
	if err != nil {
		return err
	}
	if err := s.calendarRepo.Delete(ctx, calendar); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
