package response_models

import (
	"tripboard/internal/models/db_models"
	"tripboard/pkg/utils"
)

type CalendarResponse struct {
	ID         uint               `json:"id"`
	Dt         string             `json:"dt"`
	Activities []ActivityResponse `json:"activities"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  *string            `json:"updated_at"`
}

func BuildCalendarResponse(calendar *db_models.Calendar) *CalendarResponse {
	activities := make([]ActivityResponse, 0, len(calendar.Activities))
	for i := range calendar.Activities {
		activities = append(activities, *BuildActivityResponse(&calendar.Activities[i]))
	}
	return &CalendarResponse{
		ID:         calendar.ID,
		Dt:         utils.FormatDate(calendar.Dt),
		Activities: activities,
		CreatedAt:  utils.FormatTimestamp(calendar.CreatedAt),
		UpdatedAt:  utils.FormatTimestampPtr(calendar.UpdatedAt),
	}
}
