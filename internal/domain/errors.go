package domain

import "errors"

var (
	// ErrEventNotFound covers both an id that never existed and an event
	// hidden by moderation. Callers must not be able to tell them apart.
	ErrEventNotFound = errors.New("event not found")

	ErrValidation = errors.New("validation error")
)
