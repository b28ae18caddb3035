package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripboard/internal/models/db_models"
)

type ActivityRepository interface {
	GetBySlugInCalendar(ctx context.Context, calendarID uint, slug string) (*db_models.Activity, error)
	FindByTitleInCalendar(ctx context.Context, calendarID uint, normalizedTitle string) (*db_models.Activity, error)
	GetWithParticipant(ctx context.Context, calendarID uint, slug string, participantID uint) (*db_models.Activity, error)
	Create(ctx context.Context, activity *db_models.Activity) error
	Update(ctx context.Context, activity *db_models.Activity) error
	Delete(ctx context.Context, activity *db_models.Activity) error
	AddParticipant(ctx context.Context, activity *db_models.Activity, participant *db_models.Participant) error
	RemoveParticipant(ctx context.Context, activity *db_models.Activity, participant *db_models.Participant) error
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

type activityRepository struct {
	db *gorm.DB
}

func (r *activityRepository) GetBySlugInCalendar(ctx context.Context, calendarID uint, slug string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).
		Where("slug = ? AND calendar_id = ?", slug, calendarID).
		Preload("Participants").
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

// FindByTitleInCalendar matches titles case-insensitively with surrounding
// whitespace ignored. The caller passes the already lowercased, trimmed title.
func (r *activityRepository) FindByTitleInCalendar(ctx context.Context, calendarID uint, normalizedTitle string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).
		Where("calendar_id = ? AND LOWER(TRIM(title)) = ?", calendarID, normalizedTitle).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

// GetWithParticipant resolves the activity only if the participant link
// currently exists; a miss means either no activity or no link.
func (r *activityRepository) GetWithParticipant(ctx context.Context, calendarID uint, slug string, participantID uint) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).
		Joins("JOIN activity_participant ap ON ap.activity_id = activities.id").
		Where("activities.slug = ? AND activities.calendar_id = ? AND ap.participant_id = ?",
			slug, calendarID, participantID).
		Preload("Participants").
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) Create(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(activity).Error
}

func (r *activityRepository) Update(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(activity).Error
}

// Delete removes the row only; participant links and the expense go away
// through the ON DELETE CASCADE constraints.
func (r *activityRepository) Delete(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Delete(activity).Error
}

// AddParticipant inserts the join row directly so a concurrent double-add
// hits the join table's composite primary key and fails the transaction.
func (r *activityRepository) AddParticipant(ctx context.Context, activity *db_models.Activity, participant *db_models.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Table("activity_participant").Create(map[string]interface{}{
			"activity_id":    activity.ID,
			"participant_id": participant.ID,
		}).Error
		if err != nil {
			return err
		}
		return tx.Model(&db_models.Activity{}).
			Where("id = ?", activity.ID).
			Update("updated_at", activity.UpdatedAt).Error
	})
}

func (r *activityRepository) RemoveParticipant(ctx context.Context, activity *db_models.Activity, participant *db_models.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(activity).Association("Participants").Delete(participant); err != nil {
			return err
		}
		return tx.Model(&db_models.Activity{}).
			Where("id = ?", activity.ID).
			Update("updated_at", activity.UpdatedAt).Error
	})
}
