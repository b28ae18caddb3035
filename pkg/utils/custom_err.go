package utils

import "errors"

var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrCalendarNotFound    = errors.New("calendar not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrNoActiveTrip        = errors.New("no active trip")

	ErrTripTitleTaken       = errors.New("trip title already taken")
	ErrTripSlugTaken        = errors.New("trip slug already taken")
	ErrCalendarDateTaken    = errors.New("calendar date already taken")
	ErrActivityTitleTaken   = errors.New("activity title already taken")
	ErrActivitySlugTaken    = errors.New("activity slug already taken")
	ErrParticipantNameTaken = errors.New("participant name already taken")

	ErrParticipantInActivity    = errors.New("participant already in activity")
	ErrParticipantNotInActivity = errors.New("participant not in activity")
	ErrParticipantRemoveFailed  = errors.New("participant removal failed")

	ErrExpenseExists      = errors.New("expense already exists")
	ErrExpenseSlugTaken   = errors.New("expense slug already taken")
	ErrPaymentExists      = errors.New("payment already recorded")
	ErrSplitExists        = errors.New("split already recorded")

	ErrDatabaseError = errors.New("database error")
)
