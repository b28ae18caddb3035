package response_models

import (
	"tripboard/internal/models/db_models"
	"tripboard/pkg/utils"
)

type ParticipantResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

func BuildParticipantResponse(participant *db_models.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:        participant.ID,
		Name:      participant.Name,
		CreatedAt: utils.FormatTimestamp(participant.CreatedAt),
		UpdatedAt: utils.FormatTimestampPtr(participant.UpdatedAt),
	}
}
