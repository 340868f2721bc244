// Package planner provides the schedule-optimization service: it loads a
// degree plan, fetches catalog metadata, runs the optimizer, and atomically
// replaces the stored plan with the result.
package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/planwell/planwell-api/internal/domain"
	"github.com/planwell/planwell-api/internal/domain/schedule"
)

// OptimizeRequest carries the caller's optimization settings.
type OptimizeRequest struct {
	// Speed is the credit-load policy: accelerated, normal, or relaxed.
	Speed domain.Speed `json:"speed"`
}

// OptimizeResult is the outcome of one optimization run.
type OptimizeResult struct {
	// Plan is the newly built plan. The caller's previous plan object is
	// never mutated; the stored plan is replaced atomically.
	Plan *domain.DegreePlan `json:"plan"`

	// Warnings lists every constraint the optimizer could not honor,
	// including catalog-fetch degradation.
	Warnings []schedule.Warning `json:"warnings"`

	// Fallback is true when at least one course required fallback placement,
	// meaning the schedule violates prerequisite ordering, term offerings,
	// or credit caps somewhere.
	Fallback bool `json:"fallback"`
}

// PlannerService optimizes degree plans.
type PlannerService interface {
	// Optimize loads the plan, runs the schedule optimizer with the
	// requested speed policy, persists the resulting plan, and returns it
	// together with any degradation warnings. Load and persist run in one
	// transaction; the stored plan is replaced atomically.
	//
	// A catalog fetch failure is not fatal: the optimizer runs with
	// text-only prerequisite extraction and the result carries a
	// catalog_unavailable warning.
	//
	// Returns ErrPlanNotFound if the plan does not exist and
	// domain.ErrInvalidSpeed if the speed policy is unknown.
	Optimize(ctx context.Context, planID uuid.UUID, req OptimizeRequest) (*OptimizeResult, error)
}

// Common error types for PlannerService
var (
	// ErrPlanNotFound indicates that the plan does not exist.
	ErrPlanNotFound = errors.New("plan not found")
)

// ServiceError wraps errors from the planner service with additional context.
// This allows consumers to differentiate between different types of service
// errors using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "optimize")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewOptimizeError returns a new ServiceError for the optimize operation.
func NewOptimizeError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "optimize",
		Message:   message,
		Err:       err,
	}
}
