package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/planwell/planwell-api/internal/domain"
)

// PlanStore defines the interface for degree plan persistence.
type PlanStore interface {
	// Create saves a new degree plan to the store.
	// The plan must be valid according to domain validation rules.
	// Returns ErrInvalidEntity wrapping the validation error otherwise.
	Create(ctx context.Context, plan *domain.DegreePlan) error

	// GetByID retrieves a degree plan by its unique ID.
	// Returns ErrPlanNotFound if the plan does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DegreePlan, error)

	// Update replaces the stored plan's contents (name, achieved credits,
	// years) in a single statement, so callers that swap in an optimized
	// plan do so atomically. Returns ErrPlanNotFound if the plan does not
	// exist.
	Update(ctx context.Context, plan *domain.DegreePlan) error

	// Delete removes a plan from the store by its ID.
	// Returns ErrPlanNotFound if the plan does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a PlanStore bound to the given transaction, for use
	// with RunInTransaction.
	WithTx(tx DBTX) PlanStore
}
