package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"tripboard/internal/models/db_models"
	"tripboard/internal/models/response_models"
	"tripboard/internal/repositories"
	"tripboard/pkg/utils"
)

type ActivityServiceInterface interface {
	GetBySlug(ctx context.Context, calendarID uint, slug string) (*response_models.ActivityResponse, error)
	Create(ctx context.Context, tripSlug string, calendarID uint, title string) (*response_models.ActivityResponse, error)
	Update(ctx context.Context, calendarID uint, slug string, title string) (*response_models.ActivityResponse, error)
	Delete(ctx context.Context, calendarID uint, slug string) error
	AddParticipant(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, participantID uint) (*response_models.ActivityResponse, error)
	RemoveParticipant(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, participantID uint) (*response_models.ActivityResponse, error)
}

type ActivityService struct {
	calendarRepo    repositories.CalendarRepository
	activityRepo    repositories.ActivityRepository
	participantRepo repositories.ParticipantRepository
}

func NewActivityService(
	calendarRepo repositories.CalendarRepository,
	activityRepo repositories.ActivityRepository,
	participantRepo repositories.ParticipantRepository,
) ActivityServiceInterface {
	return &ActivityService{
		calendarRepo:    calendarRepo,
		activityRepo:    activityRepo,
		participantRepo: participantRepo,
	}
}

func (s *ActivityService) getActivity(ctx context.Context, calendarID uint, slug string) (*db_models.Activity, error) {
	activity, err := s.activityRepo.GetBySlugInCalendar(ctx, calendarID, slug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (s *ActivityService) resolveCalendar(ctx context.Context, tripSlug string, calendarID uint) (*db_models.Calendar, error) {
	calendar, err := s.calendarRepo.GetByIDForTrip(ctx, tripSlug, calendarID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if calendar == nil {
		return nil, utils.ErrCalendarNotFound
	}
	return calendar, nil
}

func (s *ActivityService) resolveParticipant(ctx context.Context, tripSlug string, participantID uint) (*db_models.Participant, error) {
	participant, err := s.participantRepo.GetByIDForTrip(ctx, tripSlug, participantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if participant == nil {
		return nil, utils.ErrParticipantNotFound
	}
	return participant, nil
}

func (s *ActivityService) GetBySlug(ctx context.Context, calendarID uint, slug string) (*response_models.ActivityResponse, error) {
	activity, err := s.getActivity(ctx, calendarID, slug)
	if err != nil {
		return nil, err
	}
	return response_models.BuildActivityResponse(activity), nil
}

// Create checks the title against siblings case-insensitively and with
// whitespace trimmed. Titles that fold to non-Latin text bypass the check
// because their slugs are timestamp fallbacks anyway.
func (s *ActivityService) Create(ctx context.Context, tripSlug string, calendarID uint, title string) (*response_models.ActivityResponse, error) {
	calendar, err := s.resolveCalendar(ctx, tripSlug, calendarID)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(title))
	existing, err := s.activityRepo.FindByTitleInCalendar(ctx, calendar.ID, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrActivityTitleTaken
	}

	activity := &db_models.Activity{
		Title:      title,
		Slug:       utils.SlugifyActivity(title),
		CalendarID: calendar.ID,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrActivitySlugTaken
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildActivityResponse(activity), nil
}

// Update re-derives the slug from the new title. The per-calendar title
// check is create-only; only the global slug index guards updates.
func (s *ActivityService) Update(ctx context.Context, calendarID uint, slug string, title string) (*response_models.ActivityResponse, error) {
	activity, err := s.getActivity(ctx, calendarID, slug)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	activity.Title = title
	activity.Slug = utils.SlugifyActivity(title)
	activity.UpdatedAt = &now

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrActivitySlugTaken
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildActivityResponse(activity), nil
}

func (s *ActivityService) Delete(ctx context.Context, calendarID uint, slug string) error {
	activity, err := s.getActivity(ctx, calendarID, slug)
	if err != nil {
		return err
	}
	if err := s.activityRepo.Delete(ctx, activity); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *ActivityService) AddParticipant(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, participantID uint) (*response_models.ActivityResponse, error) {
	calendar, err := s.resolveCalendar(ctx, tripSlug, calendarID)
	if err != nil {
		return nil, err
	}
	participant, err := s.resolveParticipant(ctx, tripSlug, participantID)
	if err != nil {
		return nil, err
	}
	activity, err := s.getActivity(ctx, calendar.ID, activitySlug)
	if err != nil {
		return nil, err
	}

	for _, linked := range activity.Participants {
		if linked.ID == participant.ID {
			return nil, utils.ErrParticipantInActivity
		}
	}

	now := time.Now().UTC()
	activity.UpdatedAt = &now
	if err := s.activityRepo.AddParticipant(ctx, activity, participant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrParticipantInActivity
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	activity.Participants = append(activity.Participants, *participant)
	return response_models.BuildActivityResponse(activity), nil
}

// RemoveParticipant looks the activity up together with the link, so a
// missing link and a missing activity are indistinguishable here. Both
// answer "the participant is not in the activity".
func (s *ActivityService) RemoveParticipant(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, participantID uint) (*response_models.ActivityResponse, error) {
	calendar, err := s.resolveCalendar(ctx, tripSlug, calendarID)
	if err != nil {
		return nil, err
	}
	participant, err := s.resolveParticipant(ctx, tripSlug, participantID)
	if err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.GetWithParticipant(ctx, calendar.ID, activitySlug, participant.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if activity == nil {
		return nil, utils.ErrParticipantNotInActivity
	}

	now := time.Now().UTC()
	activity.UpdatedAt = &now
	if err := s.activityRepo.RemoveParticipant(ctx, activity, participant); err != nil {
		return nil, utils.ErrParticipantRemoveFailed
	}

	remaining := make([]db_models.Participant, 0, len(activity.Participants))
	for _, linked := range activity.Participants {
		if linked.ID != participant.ID {
			remaining = append(remaining, linked)
		}
	}
	activity.Participants = remaining
	return response_models.BuildActivityResponse(activity), nil
}
