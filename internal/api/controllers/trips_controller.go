package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripboard/internal/models/request_models"
	"tripboard/internal/services"
	"tripboard/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
	logger      *zap.Logger
}

func NewTripController(tripService services.TripServiceInterface, logger *zap.Logger) *TripController {
	return &TripController{tripService: tripService, logger: logger}
}

func (tc *TripController) ListTripsHandler(c *gin.Context) {
	trips, err := tc.tripService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (tc *TripController) GetTripHandler(c *gin.Context) {
	trip, err := tc.tripService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) GetActiveTripHandler(c *gin.Context) {
	trip, err := tc.tripService.GetActive(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) CreateTripHandler(c *gin.Context) {
	var form request_models.TripForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "title is required")
		return
	}

	trip, err := tc.tripService.Create(c.Request.Context(), form.Title, form.IsActive)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) UpdateTripHandler(c *gin.Context) {
	var form request_models.TripForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "title is required")
		return
	}

	trip, err := tc.tripService.Update(c.Request.Context(), c.Param("slug"), form.Title, form.IsActive)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) DeleteTripHandler(c *gin.Context) {
	if err := tc.tripService.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
