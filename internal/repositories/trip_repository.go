package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripboard/internal/models/db_models"
)

type TripRepository interface {
	GetBySlug(ctx context.Context, slug string) (*db_models.Trip, error)
	GetActive(ctx context.Context) (*db_models.Trip, error)
	ListAll(ctx context.Context) ([]db_models.Trip, error)
	Create(ctx context.Context, trip *db_models.Trip, clearActive bool) error
	Update(ctx context.Context, trip *db_models.Trip, clearActive bool) error
	Delete(ctx context.Context, trip *db_models.Trip) error
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

type tripRepository struct {
	db *gorm.DB
}

func (r *tripRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) GetActive(ctx context.Context) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListAll(ctx context.Context) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	if err := r.db.WithContext(ctx).Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

// Create inserts the trip, clearing every active flag first when the new
// trip claims the flag. Both writes commit together.
func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip, clearActive bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if clearActive {
			if err := clearActiveFlags(tx); err != nil {
				return err
			}
		}
		return tx.Create(trip).Error
	})
}

func (r *tripRepository) Update(ctx context.Context, trip *db_models.Trip, clearActive bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if clearActive {
			if err := clearActiveFlags(tx); err != nil {
				return err
			}
		}
		return tx.Save(trip).Error
	})
}

func (r *tripRepository) Delete(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Delete(trip).Error
}

func clearActiveFlags(tx *gorm.DB) error {
	return tx.Model(&db_models.Trip{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}
