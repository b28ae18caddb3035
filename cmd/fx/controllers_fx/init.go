package controllers_fx

import (
	"go.uber.org/fx"

	"tripboard/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewTripController,
	controllers.NewCalendarController,
	controllers.NewActivityController,
	controllers.NewParticipantController,
	controllers.NewExpenseController,
)
