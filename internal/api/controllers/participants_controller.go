package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripboard/internal/models/request_models"
	"tripboard/internal/services"
	"tripboard/pkg/utils"
)

type ParticipantController struct {
	participantService services.ParticipantServiceInterface
	logger             *zap.Logger
}

func NewParticipantController(participantService services.ParticipantServiceInterface, logger *zap.Logger) *ParticipantController {
	return &ParticipantController{participantService: participantService, logger: logger}
}

func (pc *ParticipantController) GetParticipantHandler(c *gin.Context) {
	participantID, ok := parseParticipantID(c)
	if !ok {
		return
	}

	participant, err := pc.participantService.GetByID(c.Request.Context(), c.Param("slug"), participantID)
	if err != nil {
		utils.HandleServiceError(c, pc.logger, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

func (pc *ParticipantController) CreateParticipantHandler(c *gin.Context) {
	var form request_models.ParticipantForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}

	participant, err := pc.participantService.Create(c.Request.Context(), c.Param("slug"), form.Name)
	if err != nil {
		utils.HandleServiceError(c, pc.logger, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

func (pc *ParticipantController) UpdateParticipantHandler(c *gin.Context) {
	participantID, ok := parseParticipantID(c)
	if !ok {
		return
	}
	var form request_models.ParticipantForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}

	participant, err := pc.participantService.Update(c.Request.Context(), c.Param("slug"), participantID, form.Name)
	if err != nil {
		utils.HandleServiceError(c, pc.logger, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

func (pc *ParticipantController) DeleteParticipantHandler(c *gin.Context) {
	participantID, ok := parseParticipantID(c)
	if !ok {
		return
	}

	if err := pc.participantService.Delete(c.Request.Context(), c.Param("slug"), participantID); err != nil {
		utils.HandleServiceError(c, pc.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
