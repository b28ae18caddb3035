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

type CalendarController struct {
	calendarService services.CalendarServiceInterface
	logger          *zap.Logger
}

func NewCalendarController(calendarService services.CalendarServiceInterface, logger *zap.Logger) *CalendarController {
	return &CalendarController{calendarService: calendarService, logger: logger}
}

func parseCalendarID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("calendarId"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "calendar id must be an integer")
		return 0, false
	}
	return uint(id), true
}

func (cc *CalendarController) GetCalendarHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}

	calendar, err := cc.calendarService.GetByID(c.Request.Context(), c.Param("slug"), calendarID)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}
	c.JSON(http.StatusOK, calendar)
}

func (cc *CalendarController) CreateCalendarHandler(c *gin.Context) {
	var form request_models.CalendarForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "dt is required")
		return
	}
	dt, err := utils.ParseDate(form.Dt)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "dt must be a date formatted YYYY-MM-DD")
		return
	}

	calendar, err := cc.calendarService.Create(c.Request.Context(), c.Param("slug"), dt)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}
	c.JSON(http.StatusOK, calendar)
}

func (cc *CalendarController) UpdateCalendarHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}
	var form request_models.CalendarForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "dt is required")
		return
	}
	dt, err := utils.ParseDate(form.Dt)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "dt must be a date formatted YYYY-MM-DD")
		return
	}

	calendar, err := cc.calendarService.Update(c.Request.Context(), c.Param("slug"), calendarID, dt)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}
	c.JSON(http.StatusOK, calendar)
}

func (cc *CalendarController) DeleteCalendarHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}

	if err := cc.calendarService.Delete(c.Request.Context(), c.Param("slug"), calendarID); err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
