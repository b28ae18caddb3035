package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripboard/internal/models/db_models"
	"tripboard/internal/models/response_models"
	"tripboard/internal/repositories"
	"tripboard/pkg/utils"
)

type ParticipantServiceInterface interface {
	GetByID(ctx context.Context, tripSlug string, participantID uint) (*response_models.ParticipantResponse, error)
	Create(ctx context.Context, tripSlug string, name string) (*response_models.ParticipantResponse, error)
	Update(ctx context.Context, tripSlug string, participantID uint, name string) (*response_models.ParticipantResponse, error)
	Delete(ctx context.Context, tripSlug string, participantID uint) error
}

type ParticipantService struct {
	tripRepo        repositories.TripRepository
	participantRepo repositories.ParticipantRepository
}

func NewParticipantService(
	tripRepo repositories.TripRepository,
	participantRepo repositories.ParticipantRepository,
) ParticipantServiceInterface {
	return &ParticipantService{tripRepo: tripRepo, participantRepo: participantRepo}
}

func (s *ParticipantService) getParticipant(ctx context.Context, tripSlug string, participantID uint) (*db_models.Participant, error) {
	participant, err := s.participantRepo.GetByIDForTrip(ctx, tripSlug, participantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if participant == nil {
		return nil, utils.ErrParticipantNotFound
	}
	return participant, nil
}

func (s *ParticipantService) GetByID(ctx context.Context, tripSlug string, participantID uint) (*response_models.ParticipantResponse, error) {
	participant, err := s.getParticipant(ctx, tripSlug, participantID)
	if err != nil {
		return nil, err
	}
	return response_models.BuildParticipantResponse(participant), nil
}

// Create enforces per-trip name uniqueness the same way activity titles
// are checked: lowercased and trimmed against existing rows.
func (s *ParticipantService) Create(ctx context.Context, tripSlug string, name string) (*response_models.ParticipantResponse, error) {
	trip, err := s.tripRepo.GetBySlug(ctx, tripSlug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	normalized := strings.ToLower(strings.TrimSpace(name))
	existing, err := s.participantRepo.FindByNameInTrip(ctx, trip.ID, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrParticipantNameTaken
	}

	participant := &db_models.Participant{Name: name, TripID: trip.ID}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildParticipantResponse(participant), nil
}

// Update overwrites the name without re-running the per-trip uniqueness
// check; edits may introduce duplicates.
func (s *ParticipantService) Update(ctx context.Context, tripSlug string, participantID uint, name string) (*response_models.ParticipantResponse, error) {
	participant, err := s.getParticipant(ctx, tripSlug, participantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	participant.Name = name
	participant.UpdatedAt = &now

	if err := s.participantRepo.Update(ctx, participant); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildParticipantResponse(participant), nil
}

func (s *ParticipantService) Delete(ctx context.Context, tripSlug string, participantID uint) error {
	participant, err := s.getParticipant(ctx, tripSlug, participantID)
	if err != nil {
		return err
	}
	if err := s.participantRepo.Delete(ctx, participant); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
