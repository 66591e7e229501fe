package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyMarked     = errors.New("attendance already marked for today")
	ErrInvalidTransition = errors.New("punch action is not valid for the current attendance state")
	ErrWriteFailed       = errors.New("failed to record attendance")
	ErrRecordNotFound    = errors.New("attendance record not found")
)
