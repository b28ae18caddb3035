package participant_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripboard/internal/repositories"
	"tripboard/internal/services"
)

var Module = fx.Provide(provideParticipantRepo, provideParticipantService)

func provideParticipantRepo(db *gorm.DB) repositories.ParticipantRepository {
	return repositories.NewParticipantRepository(db)
}

func provideParticipantService(
	tripRepo repositories.TripRepository,
	participantRepo repositories.ParticipantRepository,
) services.ParticipantServiceInterface {
	return services.NewParticipantService(tripRepo, participantRepo)
}
