package calendar_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripboard/internal/repositories"
	"tripboard/internal/services"
)

var Module = fx.Provide(provideCalendarRepo, provideCalendarService)

func provideCalendarRepo(db *gorm.DB) repositories.CalendarRepository {
	return repositories.NewCalendarRepository(db)
}

func provideCalendarService(
	tripRepo repositories.TripRepository,
	calendarRepo repositories.CalendarRepository,
) services.CalendarServiceInterface {
	return services.NewCalendarService(tripRepo, calendarRepo)
}
