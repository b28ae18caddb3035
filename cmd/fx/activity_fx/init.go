package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripboard/internal/repositories"
	"tripboard/internal/services"
)

var Module = fx.Provide(provideActivityRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(
	calendarRepo repositories.CalendarRepository,
	activityRepo repositories.ActivityRepository,
	participantRepo repositories.ParticipantRepository,
) services.ActivityServiceInterface {
	return services.NewActivityService(calendarRepo, activityRepo, participantRepo)
}
