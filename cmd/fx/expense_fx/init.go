package expense_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripboard/internal/repositories"
	"tripboard/internal/services"
)

var Module = fx.Provide(provideExpenseRepo, provideExpenseService)

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideExpenseService(
	calendarRepo repositories.CalendarRepository,
	activityRepo repositories.ActivityRepository,
	participantRepo repositories.ParticipantRepository,
	expenseRepo repositories.ExpenseRepository,
) services.ExpenseServiceInterface {
	return services.NewExpenseService(calendarRepo, activityRepo, participantRepo, expenseRepo)
}
