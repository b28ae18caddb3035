package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tripboard/cmd/fx/activity_fx"
	"tripboard/cmd/fx/calendar_fx"
	"tripboard/cmd/fx/config_fx"
	"tripboard/cmd/fx/controllers_fx"
	"tripboard/cmd/fx/db_fx"
	"tripboard/cmd/fx/expense_fx"
	"tripboard/cmd/fx/logger_fx"
	"tripboard/cmd/fx/participant_fx"
	"tripboard/cmd/fx/trip_fx"
	"tripboard/internal/api/controllers"
	"tripboard/pkg/config"
	"tripboard/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		trip_fx.Module,
		calendar_fx.Module,
		activity_fx.Module,
		participant_fx.Module,
		expense_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, settings *config.Settings, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", settings.Port))
				if err := engine.Run(":" + settings.Port); err != nil {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	settings *config.Settings,
	logger *zap.Logger,
	tripController *controllers.TripController,
	calendarController *controllers.CalendarController,
	activityController *controllers.ActivityController,
	participantController *controllers.ParticipantController,
	expenseController *controllers.ExpenseController,
) *gin.Engine {
	if !settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))

	RegisterRoutes(r, tripController, calendarController, activityController, participantController, expenseController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	tripController *controllers.TripController,
	calendarController *controllers.CalendarController,
	activityController *controllers.ActivityController,
	participantController *controllers.ParticipantController,
	expenseController *controllers.ExpenseController,
) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "hello world"})
	})

	api := r.Group("/api/v1")
	api.GET("/active-trip", tripController.GetActiveTripHandler)

	trips := api.Group("/trips")
	trips.GET("", tripController.ListTripsHandler)
	trips.POST("", tripController.CreateTripHandler)
	trips.GET("/:slug", tripController.GetTripHandler)
	trips.PUT("/:slug", tripController.UpdateTripHandler)
	trips.DELETE("/:slug", tripController.DeleteTripHandler)

	calendars := trips.Group("/:slug/calendars")
	calendars.POST("", calendarController.CreateCalendarHandler)
	calendars.GET("/:calendarId", calendarController.GetCalendarHandler)
	calendars.PUT("/:calendarId", calendarController.UpdateCalendarHandler)
	calendars.DELETE("/:calendarId", calendarController.DeleteCalendarHandler)

	activities := calendars.Group("/:calendarId/activities")
	activities.POST("", activityController.CreateActivityHandler)
	activities.GET("/:activitySlug", activityController.GetActivityHandler)
	activities.PUT("/:activitySlug", activityController.UpdateActivityHandler)
	activities.DELETE("/:activitySlug", activityController.DeleteActivityHandler)
	activities.POST("/:activitySlug/add_participant/:participantId", activityController.AddParticipantHandler)
	activities.POST("/:activitySlug/remove_participant/:participantId", activityController.RemoveParticipantHandler)

	expense := activities.Group("/:activitySlug/expense")
	expense.GET("", expenseController.GetExpenseHandler)
	expense.POST("", expenseController.CreateExpenseHandler)
	expense.PUT("", expenseController.UpdateExpenseHandler)
	expense.DELETE("", expenseController.DeleteExpenseHandler)
	expense.POST("/payments/:participantId", expenseController.AddPaymentHandler)
	expense.POST("/splits/:participantId", expenseController.AddSplitHandler)

	participants := trips.Group("/:slug/participants")
	participants.POST("", participantController.CreateParticipantHandler)
	participants.GET("/:participantId", participantController.GetParticipantHandler)
	participants.PUT("/:participantId", participantController.UpdateParticipantHandler)
	participants.DELETE("/:participantId", participantController.DeleteParticipantHandler)
}
