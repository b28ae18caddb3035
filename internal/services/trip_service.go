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

type TripServiceInterface interface {
	GetBySlug(ctx context.Context, slug string) (*response_models.TripResponse, error)
	GetActive(ctx context.Context) (*response_models.TripResponse, error)
	ListAll(ctx context.Context) ([]response_models.TripResponse, error)
	Create(ctx context.Context, title string, isActive bool) (*response_models.TripResponse, error)
	Update(ctx context.Context, slug string, title string, isActive bool) (*response_models.TripResponse, error)
	Delete(ctx context.Context, slug string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) getTrip(ctx context.Context, slug string) (*db_models.Trip, error) {
	trip, err := s.tripRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripService) GetBySlug(ctx context.Context, slug string) (*response_models.TripResponse, error) {
	trip, err := s.getTrip(ctx, slug)
	if err != nil {
		return nil, err
	}
	return response_models.BuildTripResponse(trip), nil
}

func (s *TripService) GetActive(ctx context.Context) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return nil, utils.ErrNoActiveTrip
	}
	return response_models.BuildTripResponse(trip), nil
}

func (s *TripService) ListAll(ctx context.Context) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildTripListResponse(trips), nil
}

// Create derives the slug from the title and rejects duplicates twice:
// a friendly pre-check by slug, then the unique index at commit for
// anything racing past it.
func (s *TripService) Create(ctx context.Context, title string, isActive bool) (*response_models.TripResponse, error) {
	slug := utils.SlugifyTrip(title)

	// Non-Latin titles collapse to a timestamp slug, so they are
	// effectively exempt from this check.
	existing, err := s.tripRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrTripTitleTaken
	}

	trip := &db_models.Trip{
		Title:    title,
		Slug:     slug,
		IsActive: isActive,
	}
	if err := s.tripRepo.Create(ctx, trip, isActive); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrTripSlugTaken
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildTripResponse(trip), nil
}

// Update re-derives the slug, so a title edit changes the trip's URL.
// The active flag is only propagated in the "set active" direction: turning
// a trip inactive never touches the other trips.
func (s *TripService) Update(ctx context.Context, slug string, title string, isActive bool) (*response_models.TripResponse, error) {
	trip, err := s.getTrip(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	trip.Title = title
	trip.Slug = utils.SlugifyTrip(title)
	trip.IsActive = isActive
	trip.UpdatedAt = &now

	if err := s.tripRepo.Update(ctx, trip, isActive); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrTripSlugTaken
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildTripResponse(trip), nil
}

func (s *TripService) Delete(ctx context.Context, slug string) error {
	trip, err := s.getTrip(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.tripRepo.Delete(ctx, trip); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
