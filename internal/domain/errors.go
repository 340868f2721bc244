package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidTerm is returned when a term name is not fall, spring, or summer.
	ErrInvalidTerm = errors.New("invalid term")

	// ErrInvalidStatus is returned when a course status is not recognized.
	ErrInvalidStatus = errors.New("invalid course status")
)
