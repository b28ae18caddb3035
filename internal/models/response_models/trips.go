package response_models

import (
	"tripboard/internal/models/db_models"
	"tripboard/pkg/utils"
)

type TripResponse struct {
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

func BuildTripResponse(trip *db_models.Trip) *TripResponse {
	return &TripResponse{
		Title:     trip.Title,
		Slug:      trip.Slug,
		IsActive:  trip.IsActive,
		CreatedAt: utils.FormatTimestamp(trip.CreatedAt),
		UpdatedAt: utils.FormatTimestampPtr(trip.UpdatedAt),
	}
}

func BuildTripListResponse(trips []db_models.Trip) []TripResponse {
	out := make([]TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *BuildTripResponse(&trips[i]))
	}
	return out
}
