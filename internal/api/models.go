package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/planwell/planwell-api/internal/domain"
	"github.com/planwell/planwell-api/internal/domain/schedule"
)

// Common request/response structures

// CreatePlanRequest defines the payload for the plan creation endpoint.
// Years carry the full course layout; course-level validation happens in the
// domain layer so the optimizer and the API agree on what a valid plan is.
type CreatePlanRequest struct {
	OwnerID         uuid.UUID         `json:"owner_id"         validate:"required"`
	Name            string            `json:"name"             validate:"required,max=200"`
	AchievedCredits float64           `json:"achieved_credits" validate:"gte=0"`
	Years           []domain.PlanYear `json:"years"            validate:"required,min=1"`
}

// UpdatePlanRequest defines the payload for replacing a plan's contents.
type UpdatePlanRequest struct {
	Name            string            `json:"name"             validate:"required,max=200"`
	AchievedCredits float64           `json:"achieved_credits" validate:"gte=0"`
	Years           []domain.PlanYear `json:"years"            validate:"required,min=1"`
}

// OptimizePlanRequest defines the payload for the optimization endpoint.
type OptimizePlanRequest struct {
	Speed string `json:"speed" validate:"required,oneof=accelerated normal relaxed"`
}

// PlanResponse represents the response data for a degree plan.
type PlanResponse struct {
	ID              string            `json:"id"`
	OwnerID         string            `json:"owner_id"`
	Name            string            `json:"name"`
	AchievedCredits float64           `json:"achieved_credits"`
	Years           []domain.PlanYear `json:"years"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// WarningResponse represents one optimizer warning.
type WarningResponse struct {
	Kind      string `json:"kind"`
	CourseKey string `json:"course_key,omitempty"`
	Slot      string `json:"slot,omitempty"`
	Message   string `json:"message"`
}

// OptimizeResponse represents the result of an optimization run.
type OptimizeResponse struct {
	Plan     PlanResponse      `json:"plan"`
	Warnings []WarningResponse `json:"warnings"`
	Fallback bool              `json:"fallback"`
}

// planToResponse transforms a domain plan into its API representation.
func planToResponse(plan *domain.DegreePlan) PlanResponse {
	return PlanResponse{
		ID:              plan.ID.String(),
		OwnerID:         plan.OwnerID.String(),
		Name:            plan.Name,
		AchievedCredits: plan.AchievedCredits,
		Years:           plan.Years,
		CreatedAt:       plan.CreatedAt,
		UpdatedAt:       plan.UpdatedAt,
	}
}

// warningsToResponse transforms optimizer warnings into their API
// representation. The slice is never nil so clients always see an array.
func warningsToResponse(warnings []schedule.Warning) []WarningResponse {
	out := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		resp := WarningResponse{
			Kind:      string(w.Kind),
			CourseKey: w.CourseKey,
			Message:   w.Message,
		}
		if w.Slot.Term != "" {
			resp.Slot = w.Slot.String()
		}
		out = append(out, resp)
	}
	return out
}
