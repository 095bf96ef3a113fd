package services

import "errors"

// Domain errors surfaced to the handler layer. Duplicate conditions are
// user-meaningful and recoverable; they are never conflated with generic
// persistence failures.
var (
	// ErrDuplicateReport means the user has already reported this medal.
	ErrDuplicateReport = errors.New("already reported")

	// ErrDuplicateCollection means the user has already collected this medal.
	ErrDuplicateCollection = errors.New("already collected")

	// ErrMedalNotFound means the referenced medal does not exist.
	ErrMedalNotFound = errors.New("medal not found")

	// ErrNotOwner means the requester does not own the medal.
	ErrNotOwner = errors.New("medal belongs to another user")

	// ErrPoorAccuracy means the GPS fix is too imprecise to place a medal
	// without explicit confirmation.
	ErrPoorAccuracy = errors.New("location accuracy too low")
)
