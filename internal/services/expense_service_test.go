package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripboard/internal/models/db_models"
	"tripboard/internal/repositories"
	"tripboard/internal/services"
	"tripboard/pkg/utils"
)

type mockExpenseRepo struct {
	getByActivity func(ctx context.Context, activityID uuid.UUID) (*db_models.Expense, error)
	findBySlug    func(ctx context.Context, slug string) (*db_models.Expense, error)
	create        func(ctx context.Context, expense *db_models.Expense) error
	update        func(ctx context.Context, expense *db_models.Expense) error
	delete        func(ctx context.Context, expense *db_models.Expense) error
	findPayment   func(ctx context.Context, expenseID uuid.UUID, participantID uint) (*db_models.ExpensePayment, error)
	addPayment    func(ctx context.Context, payment *db_models.ExpensePayment) error
	findSplit     func(ctx context.Context, expenseID uuid.UUID, participantID uint) (*db_models.ExpenseSplit, error)
	addSplit      func(ctx context.Context, split *db_models.ExpenseSplit) error
}

func (m *mockExpenseRepo) GetByActivity(ctx context.Context, activityID uuid.UUID) (*db_models.Expense, error) {
	return m.getByActivity(ctx, activityID)
}
func (m *mockExpenseRepo) FindBySlug(ctx context.Context, slug string) (*db_models.Expense, error) {
	return m.findBySlug(ctx, slug)
}
func (m *mockExpenseRepo) Create(ctx context.Context, expense *db_models.Expense) error {
	return m.create(ctx, expense)
}
func (m *mockExpenseRepo) Update(ctx context.Context, expense *db_models.Expense) error {
	return m.update(ctx, expense)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, expense *db_models.Expense) error {
	return m.delete(ctx, expense)
}
func (m *mockExpenseRepo) FindPayment(ctx context.Context, expenseID uuid.UUID, participantID uint) (*db_models.ExpensePayment, error) {
	return m.findPayment(ctx, expenseID, participantID)
}
func (m *mockExpenseRepo) AddPayment(ctx context.Context, payment *db_models.ExpensePayment) error {
	return m.addPayment(ctx, payment)
}
func (m *mockExpenseRepo) FindSplit(ctx context.Context, expenseID uuid.UUID, participantID uint) (*db_models.ExpenseSplit, error) {
	return m.findSplit(ctx, expenseID, participantID)
}
func (m *mockExpenseRepo) AddSplit(ctx context.Context, split *db_models.ExpenseSplit) error {
	return m.addSplit(ctx, split)
}

var _ repositories.ExpenseRepository = (*mockExpenseRepo)(nil)

func activityRepoReturning(activity *db_models.Activity) *mockActivityRepo {
	return &mockActivityRepo{
		getBySlugInCalendar: func(_ context.Context, _ uint, _ string) (*db_models.Activity, error) {
			return activity, nil
		},
	}
}

func newExpenseService(expenseRepo *mockExpenseRepo, participantRepo *mockParticipantRepo, activity *db_models.Activity) services.ExpenseServiceInterface {
	return services.NewExpenseService(
		calendarRepoReturning(calendarFixture()),
		activityRepoReturning(activity),
		participantRepo,
		expenseRepo,
	)
}

func TestExpenseService_Get_NotFound(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	expenseRepo := &mockExpenseRepo{
		getByActivity: func(_ context.Context, activityID uuid.UUID) (*db_models.Expense, error) {
			assert.Equal(t, activity.ID, activityID)
			return nil, nil
		},
	}
	svc := newExpenseService(expenseRepo, &mockParticipantRepo{}, activity)

	_, err := svc.Get(context.Background(), "yangon-trip", 3, "dinner")

	assert.ErrorIs(t, err, utils.ErrExpenseNotFound)
}

func TestExpenseService_Create_AlreadyExists(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	expenseRepo := &mockExpenseRepo{
		getByActivity: func(_ context.Context, _ uuid.UUID) (*db_models.Expense, error) {
			return &db_models.Expense{Slug: "dinner-bill"}, nil
		},
	}
	svc := newExpenseService(expenseRepo, &mockParticipantRepo{}, activity)

	_, err := svc.Create(context.Background(), "yangon-trip", 3, "dinner", "Dinner Bill", 120)

	assert.ErrorIs(t, err, utils.ErrExpenseExists)
}

func TestExpenseService_Create_SlugTaken(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	expenseRepo := &mockExpenseRepo{
		getByActivity: func(_ context.Context, _ uuid.UUID) (*db_models.Expense, error) {
			return nil, nil
		},
		findBySlug: func(_ context.Context, slug string) (*db_models.Expense, error) {
			assert.Equal(t, "dinner-bill", slug)
			return &db_models.Expense{Slug: slug}, nil
		},
	}
	svc := newExpenseService(expenseRepo, &mockParticipantRepo{}, activity)

	_, err := svc.Create(context.Background(), "yangon-trip", 3, "dinner", "Dinner Bill", 120)

	assert.ErrorIs(t, err, utils.ErrExpenseSlugTaken)
}

func TestExpenseService_Create_OK(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	expenseRepo := &mockExpenseRepo{
		getByActivity: func(_ context.Context, _ uuid.UUID) (*db_models.Expense, error) {
			return nil, nil
		},
		findBySlug: func(_ context.Context, _ string) (*db_models.Expense, error) {
			return nil, nil
		},
		create: func(_ context.Context, expense *db_models.Expense) error {
			assert.Equal(t, activity.ID, expense.ActivityID)
			return nil
		},
	}
	svc := newExpenseService(expenseRepo, &mockParticipantRepo{}, activity)

	got, err := svc.Create(context.Background(), "yangon-trip", 3, "dinner", "Dinner Bill", 120)

	require.NoError(t, err)
	assert.Equal(t, "dinner-bill", got.Slug)
	assert.Equal(t, float64(120), got.TotalAmount)
	assert.Empty(t, got.Payments)
	assert.Empty(t, got.Splits)
}

func TestExpenseService_Create_RaceBackstop(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	expenseRepo := &mockExpenseRepo{
		getByActivity: func(_ context.Context, _ uuid.UUID) (*db_models.Expense, error) {
			return nil, nil
		},
		findBySlug: func(_ context.Context, _ string) (*db_models.Expense, error) {
			return nil, nil
		},
		create: func(_ context.Context, _ *db_models.Expense) error {
			return gorm.ErrDuplicatedKey
		},
	}
	svc := newExpenseService(expenseRepo, &mockParticipantRepo{}, activity)

	_, err := svc.Create(context.Background(), "yangon-trip", 3, "dinner", "Dinner Bill", 120)

	assert.ErrorIs(t, err, utils.ErrExpenseSlugTaken)
}

func TestExpenseService_Update_RederivesSlug(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	expense := &db_models.Expense{ID: uuid.New(), Slug: "dinner-bill", TotalAmount: 120, ActivityID: activity.ID}
	expenseRepo := &mockExpenseRepo{
		getByActivity: func(_ context.Context, _ uuid.UUID) (*db_models.Expense, error) {
			return expense, nil
		},
		update: func(_ context.Context, e *db_models.Expense) error {
			assert.NotNil(t, e.UpdatedAt)
			return nil
		},
	}
	svc := newExpenseService(expenseRepo, &mockParticipantRepo{}, activity)

	got, err := svc.Update(context.Background(), "yangon-trip", 3, "dinner", "Final Bill", 150)

	require.NoError(t, err)
	assert.Equal(t, "final-bill", got.Slug)
	assert.Equal(t, float64(150), got.TotalAmount)
	assert.NotNil(t, got.UpdatedAt)
}

func TestExpenseService_AddPayment_Duplicate(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	expense := &db_models.Expense{ID: uuid.New(), Slug: "dinner-bill", ActivityID: activity.ID}
	expenseRepo := &mockExpenseRepo{
		getByActivity: func(_ context.Context, _ uuid.UUID) (*db_models.Expense, error) {
			return expense, nil
		},
		findPayment: func(_ context.Context, expenseID uuid.UUID, participantID uint) (*db_models.ExpensePayment, error) {
			assert.Equal(t, expense.ID, expenseID)
			assert.Equal(t, uint(5), participantID)
			return &db_models.ExpensePayment{ParticipantID: 5}, nil
		},
	}
	participantRepo := &mockParticipantRepo{
		getByIDForTrip: func(_ context.Context, _ string, _ uint) (*db_models.Participant, error) {
			return &db_models.Participant{ID: 5, Name: "Aye"}, nil
		},
	}
	svc := newExpenseService(expenseRepo, participantRepo, activity)

	_, err := svc.AddPayment(context.Background(), "yangon-trip", 3, "dinner", 5, 40)

	assert.ErrorIs(t, err, utils.ErrPaymentExists)
}

func TestExpenseService_AddPayment_OK(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	expense := &db_models.Expense{ID: uuid.New(), Slug: "dinner-bill", ActivityID: activity.ID}
	expenseRepo := &mockExpenseRepo{
		getByActivity: func(_ context.Context, _ uuid.UUID) (*db_models.Expense, error) {
			return expense, nil
		},
		findPayment: func(_ context.Context, _ uuid.UUID, _ uint) (*db_models.ExpensePayment, error) {
			return nil, nil
		},
		addPayment: func(_ context.Context, payment *db_models.ExpensePayment) error {
			assert.Equal(t, "dinner-bill-payment-5", payment.Slug)
			assert.Equal(t, expense.ID, payment.ExpenseID)
			return nil
		},
	}
	participantRepo := &mockParticipantRepo{
		getByIDForTrip: func(_ context.Context, _ string, _ uint) (*db_models.Participant, error) {
			return &db_models.Participant{ID: 5, Name: "Aye"}, nil
		},
	}
	svc := newExpenseService(expenseRepo, participantRepo, activity)

	got, err := svc.AddPayment(context.Background(), "yangon-trip", 3, "dinner", 5, 40)

	require.NoError(t, err)
	require.Len(t, got.Payments, 1)
	assert.Equal(t, uint(5), got.Payments[0].ParticipantID)
	assert.Equal(t, float64(40), got.Payments[0].AmountPaid)
}

func TestExpenseService_AddSplit_ParticipantNotFound(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	participantRepo := &mockParticipantRepo{
		getByIDForTrip: func(_ context.Context, _ string, _ uint) (*db_models.Participant, error) {
			return nil, nil
		},
	}
	svc := newExpenseService(&mockExpenseRepo{}, participantRepo, activity)

	_, err := svc.AddSplit(context.Background(), "yangon-trip", 3, "dinner", 99, 30)

	assert.ErrorIs(t, err, utils.ErrParticipantNotFound)
}

func TestExpenseService_AddSplit_RaceBackstop(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	expense := &db_models.Expense{ID: uuid.New(), Slug: "dinner-bill", ActivityID: activity.ID}
	expenseRepo := &mockExpenseRepo{
		getByActivity: func(_ context.Context, _ uuid.UUID) (*db_models.Expense, error) {
			return expense, nil
		},
		findSplit: func(_ context.Context, _ uuid.UUID, _ uint) (*db_models.ExpenseSplit, error) {
			return nil, nil
		},
		addSplit: func(_ context.Context, _ *db_models.ExpenseSplit) error {
			return gorm.ErrDuplicatedKey
		},
	}
	participantRepo := &mockParticipantRepo{
		getByIDForTrip: func(_ context.Context, _ string, _ uint) (*db_models.Participant, error) {
			return &db_models.Participant{ID: 5, Name: "Aye"}, nil
		},
	}
	svc := newExpenseService(expenseRepo, participantRepo, activity)

	_, err := svc.AddSplit(context.Background(), "yangon-trip", 3, "dinner", 5, 30)

	assert.ErrorIs(t, err, utils.ErrSplitExists)
}

func TestExpenseService_Delete_OK(t *testing.T) {
	activity := &db_models.Activity{ID: uuid.New(), Slug: "dinner", CalendarID: 3}
	expense := &db_models.Expense{ID: uuid.New(), Slug: "dinner-bill", ActivityID: activity.ID}
	deleted := false
	expenseRepo := &mockExpenseRepo{
		getByActivity: func(_ context.Context, _ uuid.UUID) (*db_models.Expense, error) {
			return expense, nil
		},
		delete: func(_ context.Context, e *db_models.Expense) error {
			deleted = true
			assert.Equal(t, expense.ID, e.ID)
			return nil
		},
	}
	svc := newExpenseService(expenseRepo, &mockParticipantRepo{}, activity)

	err := svc.Delete(context.Background(), "yangon-trip", 3, "dinner")

	require.NoError(t, err)
	assert.True(t, deleted)
}
