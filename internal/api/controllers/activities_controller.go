package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripboard/internal/models/request_models"
	"tripboard/internal/services"
	"tripboard/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
	logger          *zap.Logger
}

func NewActivityController(activityService services.ActivityServiceInterface, logger *zap.Logger) *ActivityController {
	return &ActivityController{activityService: activityService, logger: logger}
}

func parseParticipantID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("participantId"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "participant id must be an integer")
		return 0, false
	}
	return uint(id), true
}

func (ac *ActivityController) GetActivityHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}

	activity, err := ac.activityService.GetBySlug(c.Request.Context(), calendarID, c.Param("activitySlug"))
	if err != nil {
		utils.HandleServiceError(c, ac.logger, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (ac *ActivityController) CreateActivityHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}
	var form request_models.ActivityForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "title is required")
		return
	}

	activity, err := ac.activityService.Create(c.Request.Context(), c.Param("slug"), calendarID, form.Title)
	if err != nil {
		utils.HandleServiceError(c, ac.logger, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (ac *ActivityController) UpdateActivityHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}
	var form request_models.ActivityForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "title is required")
		return
	}

	activity, err := ac.activityService.Update(c.Request.Context(), calendarID, c.Param("activitySlug"), form.Title)
	if err != nil {
		utils.HandleServiceError(c, ac.logger, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (ac *ActivityController) DeleteActivityHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}

	if err := ac.activityService.Delete(c.Request.Context(), calendarID, c.Param("activitySlug")); err != nil {
		utils.HandleServiceError(c, ac.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ac *ActivityController) AddParticipantHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}
	participantID, ok := parseParticipantID(c)
	if !ok {
		return
	}

	activity, err := ac.activityService.AddParticipant(
		c.Request.Context(), c.Param("slug"), calendarID, c.Param("activitySlug"), participantID)
	if err != nil {
		utils.HandleServiceError(c, ac.logger, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (ac *ActivityController) RemoveParticipantHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}
	participantID, ok := parseParticipantID(c)
	if !ok {
		return
	}

	activity, err := ac.activityService.RemoveParticipant(
		c.Request.Context(), c.Param("slug"), calendarID, c.Param("activitySlug"), participantID)
	if err != nil {
		utils.HandleServiceError(c, ac.logger, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}
