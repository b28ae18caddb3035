package response_models

import (
	"tripboard/internal/models/db_models"
	"tripboard/pkg/utils"
)

type ActivityResponse struct {
	Title        string                `json:"title"`
	Slug         string                `json:"slug"`
	Participants []ParticipantResponse `json:"participants"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    *string               `json:"updated_at"`
}

func BuildActivityResponse(activity *db_models.Activity) *ActivityResponse {
	participants := make([]ParticipantResponse, 0, len(activity.Participants))
	for i := range activity.Participants {
		participants = append(participants, *BuildParticipantResponse(&activity.Participants[i]))
	}
	return &ActivityResponse{
		Title:        activity.Title,
		Slug:         activity.Slug,
		Participants: participants,
		CreatedAt:    utils.FormatTimestamp(activity.CreatedAt),
		UpdatedAt:    utils.FormatTimestampPtr(activity.UpdatedAt),
	}
}
