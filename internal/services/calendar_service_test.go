package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripboard/internal/models/db_models"
	"tripboard/internal/repositories"
	"tripboard/internal/services"
	"tripboard/pkg/utils"
)

type mockCalendarRepo struct {
	getByIDForTrip    func(ctx context.Context, tripSlug string, calendarID uint) (*db_models.Calendar, error)
	findByTripAndDate func(ctx context.Context, tripID uuid.UUID, dt time.Time) (*db_models.Calendar, error)
	create            func(ctx context.Context, calendar *db_models.Calendar) error
	update            func(ctx context.Context, calendar *db_models.Calendar) error
	delete            func(ctx context.Context, calendar *db_models.Calendar) error
}

func (m *mockCalendarRepo) GetByIDForTrip(ctx context.Context, tripSlug string, calendarID uint) (*db_models.Calendar, error) {
	return m.getByIDForTrip(ctx, tripSlug, calendarID)
}
func (m *mockCalendarRepo) FindByTripAndDate(ctx context.Context, tripID uuid.UUID, dt time.Time) (*db_models.Calendar, error) {
	return m.findByTripAndDate(ctx, tripID, dt)
}
func (m *mockCalendarRepo) Create(ctx context.Context, calendar *db_models.Calendar) error {
	return m.create(ctx, calendar)
}
func (m *mockCalendarRepo) Update(ctx context.Context, calendar *db_models.Calendar) error {
	return m.update(ctx, calendar)
}
func (m *mockCalendarRepo) Delete(ctx context.Context, calendar *db_models.Calendar) error {
	return m.delete(ctx, calendar)
}

var _ repositories.CalendarRepository = (*mockCalendarRepo)(nil)

func tripFixture() *db_models.Trip {
	return &db_models.Trip{ID: uuid.New(), Title: "Yangon Trip", Slug: "yangon-trip"}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	dt, err := utils.ParseDate(value)
	require.NoError(t, err)
	return dt
}

func TestCalendarService_Create_TripNotFound(t *testing.T) {
	svc := services.NewCalendarService(
		&mockTripRepo{getBySlug: func(_ context.Context, _ string) (*db_models.Trip, error) { return nil, nil }},
		&mockCalendarRepo{},
	)

	_, err := svc.Create(context.Background(), "missing", mustDate(t, "2025-06-01"))

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestCalendarService_Create_SameDateConflict(t *testing.T) {
	trip := tripFixture()
	svc := services.NewCalendarService(
		&mockTripRepo{getBySlug: func(_ context.Context, _ string) (*db_models.Trip, error) { return trip, nil }},
		&mockCalendarRepo{
			findByTripAndDate: func(_ context.Context, tripID uuid.UUID, _ time.Time) (*db_models.Calendar, error) {
				assert.Equal(t, trip.ID, tripID)
				return &db_models.Calendar{ID: 7, TripID: tripID}, nil
			},
		},
	)

	_, err := svc.Create(context.Background(), "yangon-trip", mustDate(t, "2025-06-01"))

	assert.ErrorIs(t, err, utils.ErrCalendarDateTaken)
}

func TestCalendarService_Create_OK(t *testing.T) {
	trip := tripFixture()
	svc := services.NewCalendarService(
		&mockTripRepo{getBySlug: func(_ context.Context, _ string) (*db_models.Trip, error) { return trip, nil }},
		&mockCalendarRepo{
			findByTripAndDate: func(_ context.Context, _ uuid.UUID, _ time.Time) (*db_models.Calendar, error) {
				return nil, nil
			},
			create: func(_ context.Context, calendar *db_models.Calendar) error {
				calendar.ID = 3
				return nil
			},
		},
	)

	got, err := svc.Create(context.Background(), "yangon-trip", mustDate(t, "2025-06-01"))

	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID)
	assert.Equal(t, "2025-06-01", got.Dt)
	assert.Empty(t, got.Activities)
}

func TestCalendarService_Create_DuplicateKeyBackstop(t *testing.T) {
	trip := tripFixture()
	svc := services.NewCalendarService(
		&mockTripRepo{getBySlug: func(_ context.Context, _ string) (*db_models.Trip, error) { return trip, nil }},
		&mockCalendarRepo{
			findByTripAndDate: func(_ context.Context, _ uuid.UUID, _ time.Time) (*db_models.Calendar, error) {
				return nil, nil
			},
			create: func(_ context.Context, _ *db_models.Calendar) error { return gorm.ErrDuplicatedKey },
		},
	)

	_, err := svc.Create(context.Background(), "yangon-trip", mustDate(t, "2025-06-01"))

	assert.ErrorIs(t, err, utils.ErrCalendarDateTaken)
}

// Update deliberately skips the sibling-date pre-check: the repo double has
// no findByTripAndDate set, so calling it would panic.
func TestCalendarService_Update_NoSiblingRecheck(t *testing.T) {
	calendar := &db_models.Calendar{ID: 3, Dt: mustDate(t, "2025-06-01")}
	svc := services.NewCalendarService(
		&mockTripRepo{},
		&mockCalendarRepo{
			getByIDForTrip: func(_ context.Context, _ string, _ uint) (*db_models.Calendar, error) {
				return calendar, nil
			},
			update: func(_ context.Context, _ *db_models.Calendar) error { return nil },
		},
	)

	got, err := svc.Update(context.Background(), "yangon-trip", 3, mustDate(t, "2025-06-02"))

	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", got.Dt)
	assert.NotNil(t, got.UpdatedAt)
}

func TestCalendarService_GetByID_NotFound(t *testing.T) {
	svc := services.NewCalendarService(
		&mockTripRepo{},
		&mockCalendarRepo{
			getByIDForTrip: func(_ context.Context, _ string, _ uint) (*db_models.Calendar, error) {
				return nil, nil
			},
		},
	)

	_, err := svc.GetByID(context.Background(), "yangon-trip", 99)

	assert.ErrorIs(t, err, utils.ErrCalendarNotFound)
}
