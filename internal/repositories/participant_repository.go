package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripboard/internal/models/db_models"
)

type ParticipantRepository interface {
	GetByIDForTrip(ctx context.Context, tripSlug string, participantID uint) (*db_models.Participant, error)
	FindByNameInTrip(ctx context.Context, tripID uuid.UUID, normalizedName string) (*db_models.Participant, error)
	Create(ctx context.Context, participant *db_models.Participant) error
	Update(ctx context.Context, participant *db_models.Participant) error
	Delete(ctx context.Context, participant *db_models.Participant) error
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

type participantRepository struct {
	db *gorm.DB
}

func (r *participantRepository) GetByIDForTrip(ctx context.Context, tripSlug string, participantID uint) (*db_models.Participant, error) {
	var participant db_models.Participant
	err := r.db.WithContext(ctx).
		Joins("JOIN trips ON trips.id = participants.trip_id").
		Where("participants.id = ? AND trips.slug = ?", participantID, tripSlug).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

// FindByNameInTrip expects the lowercased, trimmed name.
func (r *participantRepository) FindByNameInTrip(ctx context.Context, tripID uuid.UUID, normalizedName string) (*db_models.Participant, error) {
	var participant db_models.Participant
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND LOWER(TRIM(name)) = ?", tripID, normalizedName).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) Create(ctx context.Context, participant *db_models.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepository) Update(ctx context.Context, participant *db_models.Participant) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(participant).Error
}

func (r *participantRepository) Delete(ctx context.Context, participant *db_models.Participant) error {
	return r.db.WithContext(ctx).Delete(participant).Error
}
