package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripboard/internal/models/db_models"
	"tripboard/internal/models/response_models"
	"tripboard/internal/repositories"
	"tripboard/pkg/utils"
)

type ExpenseServiceInterface interface {
	Get(ctx context.Context, tripSlug string, calendarID uint, activitySlug string) (*response_models.ExpenseResponse, error)
	Create(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, title string, totalAmount float64) (*response_models.ExpenseResponse, error)
	Update(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, title string, totalAmount float64) (*response_models.ExpenseResponse, error)
	Delete(ctx context.Context, tripSlug string, calendarID uint, activitySlug string) error
	AddPayment(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, participantID uint, amountPaid float64) (*response_models.ExpenseResponse, error)
	AddSplit(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, participantID uint, amountOwed float64) (*response_models.ExpenseResponse, error)
}

type ExpenseService struct {
	calendarRepo    repositories.CalendarRepository
	activityRepo    repositories.ActivityRepository
	participantRepo repositories.ParticipantRepository
	expenseRepo     repositories.ExpenseRepository
}

func NewExpenseService(
	calendarRepo repositories.CalendarRepository,
	activityRepo repositories.ActivityRepository,
	participantRepo repositories.ParticipantRepository,
	expenseRepo repositories.ExpenseRepository,
) ExpenseServiceInterface {
	return &ExpenseService{
		calendarRepo:    calendarRepo,
		activityRepo:    activityRepo,
		participantRepo: participantRepo,
		expenseRepo:     expenseRepo,
	}
}

// resolveActivity walks the full ownership chain: trip by slug, calendar
// within the trip, activity within the calendar.
func (s *ExpenseService) resolveActivity(ctx context.Context, tripSlug string, calendarID uint, activitySlug string) (*db_models.Activity, error) {
	calendar, err := s.calendarRepo.GetByIDForTrip(ctx, tripSlug, calendarID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if calendar == nil {
		return nil, utils.ErrCalendarNotFound
	}

	activity, err := s.activityRepo.GetBySlugInCalendar(ctx, calendar.ID, activitySlug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (s *ExpenseService) getExpense(ctx context.Context, activityID uuid.UUID) (*db_models.Expense, error) {
	expense, err := s.expenseRepo.GetByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if expense == nil {
		return nil, utils.ErrExpenseNotFound
	}
	return expense, nil
}

func (s *ExpenseService) Get(ctx context.Context, tripSlug string, calendarID uint, activitySlug string) (*response_models.ExpenseResponse, error) {
	activity, err := s.resolveActivity(ctx, tripSlug, calendarID, activitySlug)
	if err != nil {
		return nil, err
	}
	expense, err := s.getExpense(ctx, activity.ID)
	if err != nil {
		return nil, err
	}
	return response_models.BuildExpenseResponse(expense), nil
}

// Create follows the activity pattern: resolve ancestors, pre-check the
// one-expense-per-activity rule and the slug, rely on the unique indexes
// for races.
func (s *ExpenseService) Create(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, title string, totalAmount float64) (*response_models.ExpenseResponse, error) {
	activity, err := s.resolveActivity(ctx, tripSlug, calendarID, activitySlug)
	if err != nil {
		return nil, err
	}

	existing, err := s.expenseRepo.GetByActivity(ctx, activity.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrExpenseExists
	}

	slug := utils.SlugifyExpense(title)
	duplicate, err := s.expenseRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if duplicate != nil {
		return nil, utils.ErrExpenseSlugTaken
	}

	expense := &db_models.Expense{
		Slug:        slug,
		TotalAmount: totalAmount,
		ActivityID:  activity.ID,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrExpenseSlugTaken
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildExpenseResponse(expense), nil
}

func (s *ExpenseService) Update(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, title string, totalAmount float64) (*response_models.ExpenseResponse, error) {
	activity, err := s.resolveActivity(ctx, tripSlug, calendarID, activitySlug)
	if err != nil {
		return nil, err
	}
	expense, err := s.getExpense(ctx, activity.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense.Slug = utils.SlugifyExpense(title)
	expense.TotalAmount = totalAmount
	expense.UpdatedAt = &now

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrExpenseSlugTaken
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.BuildExpenseResponse(expense), nil
}

func (s *ExpenseService) Delete(ctx context.Context, tripSlug string, calendarID uint, activitySlug string) error {
	activity, err := s.resolveActivity(ctx, tripSlug, calendarID, activitySlug)
	if err != nil {
		return err
	}
	expense, err := s.getExpense(ctx, activity.ID)
	if err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(ctx, expense); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *ExpenseService) AddPayment(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, participantID uint, amountPaid float64) (*response_models.ExpenseResponse, error) {
	activity, err := s.resolveActivity(ctx, tripSlug, calendarID, activitySlug)
	if err != nil {
		return nil, err
	}
	participant, err := s.participantRepo.GetByIDForTrip(ctx, tripSlug, participantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if participant == nil {
		return nil, utils.ErrParticipantNotFound
	}
	expense, err := s.getExpense(ctx, activity.ID)
	if err != nil {
		return nil, err
	}

	existing, err := s.expenseRepo.FindPayment(ctx, expense.ID, participant.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrPaymentExists
	}

	payment := &db_models.ExpensePayment{
		Slug:          fmt.Sprintf("%s-payment-%d", expense.Slug, participant.ID),
		ExpenseID:     expense.ID,
		ParticipantID: participant.ID,
		AmountPaid:    amountPaid,
	}
	if err := s.expenseRepo.AddPayment(ctx, payment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrPaymentExists
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	expense.Payments = append(expense.Payments, *payment)
	return response_models.BuildExpenseResponse(expense), nil
}

func (s *ExpenseService) AddSplit(ctx context.Context, tripSlug string, calendarID uint, activitySlug string, participantID uint, amountOwed float64) (*response_models.ExpenseResponse, error) {
	activity, err := s.resolveActivity(ctx, tripSlug, calendarID, activitySlug)
	if err != nil {
		return nil, err
	}
	participant, err := s.participantRepo.GetByIDForTrip(ctx, tripSlug, participantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if participant == nil {
		return nil, utils.ErrParticipantNotFound
	}
	expense, err := s.getExpense(ctx, activity.ID)
	if err != nil {
		return nil, err
	}

	existing, err := s.expenseRepo.FindSplit(ctx, expense.ID, participant.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrSplitExists
	}

	split := &db_models.ExpenseSplit{
		Slug:          fmt.Sprintf("%s-split-%d", expense.Slug, participant.ID),
		ExpenseID:     expense.ID,
		ParticipantID: participant.ID,
		AmountOwed:    amountOwed,
	}
	if err := s.expenseRepo.AddSplit(ctx, split); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrSplitExists
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	expense.Splits = append(expense.Splits, *split)
	return response_models.BuildExpenseResponse(expense), nil
}
