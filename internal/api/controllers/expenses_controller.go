package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripboard/internal/models/request_models"
	"tripboard/internal/services"
	"tripboard/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
	logger         *zap.Logger
}

func NewExpenseController(expenseService services.ExpenseServiceInterface, logger *zap.Logger) *ExpenseController {
	return &ExpenseController{expenseService: expenseService, logger: logger}
}

func (ec *ExpenseController) GetExpenseHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}

	expense, err := ec.expenseService.Get(
		c.Request.Context(), c.Param("slug"), calendarID, c.Param("activitySlug"))
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (ec *ExpenseController) CreateExpenseHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}
	var form request_models.ExpenseForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "title and total_amount are required")
		return
	}

	expense, err := ec.expenseService.Create(
		c.Request.Context(), c.Param("slug"), calendarID, c.Param("activitySlug"),
		form.Title, form.TotalAmount)
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (ec *ExpenseController) UpdateExpenseHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}
	var form request_models.ExpenseForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "title and total_amount are required")
		return
	}

	expense, err := ec.expenseService.Update(
		c.Request.Context(), c.Param("slug"), calendarID, c.Param("activitySlug"),
		form.Title, form.TotalAmount)
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (ec *ExpenseController) DeleteExpenseHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}

	err := ec.expenseService.Delete(
		c.Request.Context(), c.Param("slug"), calendarID, c.Param("activitySlug"))
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ec *ExpenseController) AddPaymentHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}
	participantID, ok := parseParticipantID(c)
	if !ok {
		return
	}
	var form request_models.PaymentForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "amount_paid is required")
		return
	}

	expense, err := ec.expenseService.AddPayment(
		c.Request.Context(), c.Param("slug"), calendarID, c.Param("activitySlug"),
		participantID, form.AmountPaid)
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (ec *ExpenseController) AddSplitHandler(c *gin.Context) {
	calendarID, ok := parseCalendarID(c)
	if !ok {
		return
	}
	participantID, ok := parseParticipantID(c)
	if !ok {
		return
	}
	var form request_models.SplitForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "amount_owed is required")
		return
	}

	expense, err := ec.expenseService.AddSplit(
		c.Request.Context(), c.Param("slug"), calendarID, c.Param("activitySlug"),
		participantID, form.AmountOwed)
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}
