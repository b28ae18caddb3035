package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error bodies are {"detail": "..."} to stay wire-compatible with the
// API this service replaces.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func RespondError(c *gin.Context, code int, detail string) {
	c.JSON(code, ErrorResponse{Detail: detail})
}

type errorMapping struct {
	code   int
	detail string
}

var serviceErrors = []struct {
	err     error
	mapping errorMapping
}{
	{ErrTripNotFound, errorMapping{http.StatusNotFound, "Trip not found"}},
	{ErrCalendarNotFound, errorMapping{http.StatusNotFound, "Calendar not found"}},
	{ErrActivityNotFound, errorMapping{http.StatusNotFound, "Activity not found"}},
	{ErrParticipantNotFound, errorMapping{http.StatusNotFound, "Participant not found"}},
	{ErrExpenseNotFound, errorMapping{http.StatusNotFound, "Expense not found"}},
	{ErrNoActiveTrip, errorMapping{http.StatusNotFound, "No active trip"}},

	{ErrTripTitleTaken, errorMapping{http.StatusBadRequest, "Trip with this title already exists"}},
	{ErrTripSlugTaken, errorMapping{http.StatusBadRequest, "Trip with this slug already exists"}},
	{ErrCalendarDateTaken, errorMapping{http.StatusBadRequest, "Calendar with the same date already exists in this trip"}},
	{ErrActivityTitleTaken, errorMapping{http.StatusBadRequest, "Activity with this title already exists"}},
	{ErrActivitySlugTaken, errorMapping{http.StatusBadRequest, "Activity with this slug already exists"}},
	{ErrParticipantNameTaken, errorMapping{http.StatusBadRequest, "Participant with the same name already exists in this trip"}},

	{ErrParticipantInActivity, errorMapping{http.StatusBadRequest, "Participant already exists in the activity"}},
	// Deliberately 400, not 404: "link absent" is answered differently
	// from "entity absent" everywhere this API reports it.
	{ErrParticipantNotInActivity, errorMapping{http.StatusBadRequest, "Participant is already not in the activity"}},
	{ErrParticipantRemoveFailed, errorMapping{http.StatusBadRequest, "Something went wrong while trying to remove the participant from the activity"}},

	{ErrExpenseExists, errorMapping{http.StatusBadRequest, "Expense already exists for this activity"}},
	{ErrExpenseSlugTaken, errorMapping{http.StatusBadRequest, "Expense with this slug already exists"}},
	{ErrPaymentExists, errorMapping{http.StatusBadRequest, "Payment already recorded for this participant"}},
	{ErrSplitExists, errorMapping{http.StatusBadRequest, "Split already recorded for this participant"}},
}

// HandleServiceError translates service sentinels into HTTP responses.
// Anything unrecognized is a 500 and gets logged with the trace id.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	for _, known := range serviceErrors {
		if errors.Is(err, known.err) {
			RespondError(c, known.mapping.code, known.mapping.detail)
			return
		}
	}

	traceID, _ := c.Get("trace_id")
	logger.Error("unhandled service error",
		zap.Error(err),
		zap.Any("trace_id", traceID),
	)
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
