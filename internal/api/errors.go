package api

import (
	"errors"
	"net/http"

	"github.com/planwell/planwell-api/internal/api/shared"
	"github.com/planwell/planwell-api/internal/domain"
	"github.com/planwell/planwell-api/internal/service"
	"github.com/planwell/planwell-api/internal/service/planner"
	"github.com/planwell/planwell-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, planner.ErrPlanNotFound),
		errors.Is(err, store.ErrPlanNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidSpeed),
		errors.Is(err, domain.ErrInvalidTerm),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPlanNameEmpty),
		errors.Is(err, domain.ErrPlanNoYears),
		errors.Is(err, domain.ErrPlanDuplicateYear),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, planner.ErrPlanNotFound),
		errors.Is(err, store.ErrPlanNotFound):
		return "Plan not found"

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return "Plan already exists"

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidSpeed):
		return "Speed must be accelerated, normal, or relaxed"

	case errors.Is(err, domain.ErrInvalidTerm):
		return "Term must be fall, spring, or summer"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPlanNameEmpty),
		errors.Is(err, domain.ErrPlanNoYears),
		errors.Is(err, domain.ErrPlanDuplicateYear),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid plan data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message, logs the
// full error, and writes the sanitized response. An empty userMessage falls
// back to GetSafeErrorMessage.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
