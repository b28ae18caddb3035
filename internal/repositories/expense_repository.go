package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripboard/internal/models/db_models"
)

type ExpenseRepository interface {
	GetByActivity(ctx context.Context, activityID uuid.UUID) (*db_models.Expense, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Expense, error)
	Create(ctx context.Context, expense *db_models.Expense) error
	Update(ctx context.Context, expense *db_models.Expense) error
	Delete(ctx context.Context, expense *db_models.Expense) error
	FindPayment(ctx context.Context, expenseID uuid.UUID, participantID uint) (*db_models.ExpensePayment, error)
	AddPayment(ctx context.Context, payment *db_models.ExpensePayment) error
	FindSplit(ctx context.Context, expenseID uuid.UUID, participantID uint) (*db_models.ExpenseSplit, error)
	AddSplit(ctx context.Context, split *db_models.ExpenseSplit) error
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

type expenseRepository struct {
	db *gorm.DB
}

func (r *expenseRepository) GetByActivity(ctx context.Context, activityID uuid.UUID) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Preload("Payments").
		Preload("Splits").
		First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) Create(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(expense).Error
}

func (r *expenseRepository) Update(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Delete(expense).Error
}

func (r *expenseRepository) FindPayment(ctx context.Context, expenseID uuid.UUID, participantID uint) (*db_models.ExpensePayment, error) {
	var payment db_models.ExpensePayment
	err := r.db.WithContext(ctx).
		Where("expense_id = ? AND participant_id = ?", expenseID, participantID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *expenseRepository) AddPayment(ctx context.Context, payment *db_models.ExpensePayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *expenseRepository) FindSplit(ctx context.Context, expenseID uuid.UUID, participantID uint) (*db_models.ExpenseSplit, error) {
	var split db_models.ExpenseSplit
	err := r.db.WithContext(ctx).
		Where("expense_id = ? AND participant_id = ?", expenseID, participantID).
		First(&split).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &split, nil
}

func (r *expenseRepository) AddSplit(ctx context.Context, split *db_models.ExpenseSplit) error {
	return r.db.WithContext(ctx).Create(split).Error
}
