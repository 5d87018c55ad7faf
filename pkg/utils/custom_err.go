package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")

	ErrWorkoutNotFound      = errors.New("workout not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrGoalNotFound         = errors.New("goal not found")
	ErrActivityTypeNotFound = errors.New("activity type not found")
	ErrActivityTypeExists   = errors.New("activity type already exists")

	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrInvalidRating   = errors.New("rating must be 1, 2 or 3")
	ErrInvalidDate     = errors.New("date must be formatted YYYY-MM-DD")
	ErrInvalidDistance = errors.New("distance must be positive with a known unit")

	ErrDatabaseError = errors.New("database error")

	ErrTranscriptionFailed   = errors.New("transcription provider failed")
	ErrProviderNotConfigured = errors.New("provider not configured")
	ErrEmptyTranscription    = errors.New("transcription must not be empty")
)
