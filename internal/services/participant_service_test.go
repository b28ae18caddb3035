package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripboard/internal/models/db_models"
	"tripboard/internal/services"
	"tripboard/pkg/utils"
)

func TestParticipantService_Create_TripNotFound(t *testing.T) {
	tripRepo := &mockTripRepo{
		getBySlug: func(_ context.Context, _ string) (*db_models.Trip, error) { return nil, nil },
	}
	svc := services.NewParticipantService(tripRepo, &mockParticipantRepo{})

	_, err := svc.Create(context.Background(), "missing", "Aye")

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestParticipantService_Create_NameVariantsConflict(t *testing.T) {
	tripID := uuid.New()
	tripRepo := &mockTripRepo{
		getBySlug: func(_ context.Context, _ string) (*db_models.Trip, error) {
			return &db_models.Trip{ID: tripID, Slug: "yangon-trip"}, nil
		},
	}
	participantRepo := &mockParticipantRepo{
		findByNameInTrip: func(_ context.Context, gotTripID uuid.UUID, normalizedName string) (*db_models.Participant, error) {
			assert.Equal(t, tripID, gotTripID)
			if normalizedName == "aye" {
				return &db_models.Participant{ID: 1, Name: "Aye"}, nil
			}
			return nil, nil
		},
	}
	svc := services.NewParticipantService(tripRepo, participantRepo)

	for _, name := range []string{"aye", "AYE", " Aye "} {
		_, err := svc.Create(context.Background(), "yangon-trip", name)
		assert.ErrorIs(t, err, utils.ErrParticipantNameTaken, "name %q", name)
	}
}

func TestParticipantService_Create_OK(t *testing.T) {
	tripID := uuid.New()
	tripRepo := &mockTripRepo{
		getBySlug: func(_ context.Context, _ string) (*db_models.Trip, error) {
			return &db_models.Trip{ID: tripID, Slug: "yangon-trip"}, nil
		},
	}
	participantRepo := &mockParticipantRepo{
		findByNameInTrip: func(_ context.Context, _ uuid.UUID, _ string) (*db_models.Participant, error) {
			return nil, nil
		},
		create: func(_ context.Context, participant *db_models.Participant) error {
			assert.Equal(t, tripID, participant.TripID)
			participant.ID = 7
			return nil
		},
	}
	svc := services.NewParticipantService(tripRepo, participantRepo)

	got, err := svc.Create(context.Background(), "yangon-trip", "Aye")

	require.NoError(t, err)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "Aye", got.Name)
	assert.Nil(t, got.UpdatedAt)
}

func TestParticipantService_Update_SkipsNameCheck(t *testing.T) {
	participant := &db_models.Participant{ID: 7, Name: "Aye"}
	// findByNameInTrip left nil: a call would panic the test.
	participantRepo := &mockParticipantRepo{
		getByIDForTrip: func(_ context.Context, _ string, participantID uint) (*db_models.Participant, error) {
			assert.Equal(t, uint(7), participantID)
			return participant, nil
		},
		update: func(_ context.Context, p *db_models.Participant) error {
			assert.NotNil(t, p.UpdatedAt)
			return nil
		},
	}
	svc := services.NewParticipantService(&mockTripRepo{}, participantRepo)

	got, err := svc.Update(context.Background(), "yangon-trip", 7, "Ko")

	require.NoError(t, err)
	assert.Equal(t, "Ko", got.Name)
	assert.NotNil(t, got.UpdatedAt)
}

func TestParticipantService_Delete_NotFound(t *testing.T) {
	participantRepo := &mockParticipantRepo{
		getByIDForTrip: func(_ context.Context, _ string, _ uint) (*db_models.Participant, error) {
			return nil, nil
		},
	}
	svc := services.NewParticipantService(&mockTripRepo{}, participantRepo)

	err := svc.Delete(context.Background(), "yangon-trip", 99)

	assert.ErrorIs(t, err, utils.ErrParticipantNotFound)
}

func TestParticipantService_Delete_OK(t *testing.T) {
	participant := &db_models.Participant{ID: 7, Name: "Aye"}
	deleted := false
	participantRepo := &mockParticipantRepo{
		getByIDForTrip: func(_ context.Context, _ string, _ uint) (*db_models.Participant, error) {
			return participant, nil
		},
		delete: func(_ context.Context, p *db_models.Participant) error {
			deleted = true
			assert.Equal(t, uint(7), p.ID)
			return nil
		},
	}
	svc := services.NewParticipantService(&mockTripRepo{}, participantRepo)

	err := svc.Delete(context.Background(), "yangon-trip", 7)

	require.NoError(t, err)
	assert.True(t, deleted)
}
