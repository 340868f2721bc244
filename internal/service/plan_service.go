package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/planwell/planwell-api/internal/domain"
	"github.com/planwell/planwell-api/internal/platform/logger"
	"github.com/planwell/planwell-api/internal/store"
)

// PlanServiceError is a custom error type for plan service errors.
type PlanServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for PlanServiceError.
func (e *PlanServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plan service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("plan service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PlanServiceError) Unwrap() error {
	return e.Err
}

// NewPlanServiceError creates a new PlanServiceError.
func NewPlanServiceError(operation, message string, err error) *PlanServiceError {
	return &PlanServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// PlanService manages degree plan lifecycle: creation, retrieval, and
// replacement of plan contents. Optimization lives in the planner package.
type PlanService interface {
	// CreatePlan builds and stores a new degree plan for the owner.
	CreatePlan(ctx context.Context, ownerID uuid.UUID, name string, years []domain.PlanYear, achievedCredits float64) (*domain.DegreePlan, error)

	// GetPlan retrieves a plan by ID. Returns ErrPlanNotFound if it does not exist.
	GetPlan(ctx context.Context, id uuid.UUID) (*domain.DegreePlan, error)

	// UpdatePlan replaces the plan's name, achieved credits, and years.
	// Returns ErrPlanNotFound if the plan does not exist.
	UpdatePlan(ctx context.Context, id uuid.UUID, name string, years []domain.PlanYear, achievedCredits float64) (*domain.DegreePlan, error)

	// DeletePlan removes a plan. Returns ErrPlanNotFound if it does not exist.
	DeletePlan(ctx context.Context, id uuid.UUID) error
}

// planServiceImpl implements PlanService on top of store.PlanStore.
type planServiceImpl struct {
	planStore store.PlanStore
	logger    *slog.Logger
}

// NewPlanService creates a new PlanService implementation.
func NewPlanService(planStore store.PlanStore, logger *slog.Logger) PlanService {
	if planStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("planStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &planServiceImpl{
		planStore: planStore,
		logger:    logger.With(slog.String("component", "plan_service")),
	}
}

var _ PlanService = (*planServiceImpl)(nil)

// CreatePlan implements PlanService.CreatePlan.
func (s *planServiceImpl) CreatePlan(
	ctx context.Context,
	ownerID uuid.UUID,
	name string,
	years []domain.PlanYear,
	achievedCredits float64,
) (*domain.DegreePlan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	plan, err := domain.NewDegreePlan(ownerID, name, years)
	if err != nil {
		return nil, NewPlanServiceError("create", "invalid plan", err)
	}
	plan.AchievedCredits = achievedCredits

	if err := s.planStore.Create(ctx, plan); err != nil {
		log.Error("failed to create plan",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()))
		return nil, NewPlanServiceError("create", "failed to store plan", err)
	}

	log.Debug("plan created",
		slog.String("plan_id", plan.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return plan, nil
}

// GetPlan implements PlanService.GetPlan.
func (s *planServiceImpl) GetPlan(ctx context.Context, id uuid.UUID) (*domain.DegreePlan, error) {
	plan, err := s.planStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, NewPlanServiceError("get", "failed to load plan", err)
	}
	return plan, nil
}

// UpdatePlan implements PlanService.UpdatePlan.
func (s *planServiceImpl) UpdatePlan(
	ctx context.Context,
	id uuid.UUID,
	name string,
	years []domain.PlanYear,
	achievedCredits float64,
) (*domain.DegreePlan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	plan, err := s.planStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, NewPlanServiceError("update", "failed to load plan", err)
	}

	plan.Name = name
	plan.Years = years
	plan.AchievedCredits = achievedCredits
	plan.UpdatedAt = time.Now().UTC()

	if err := plan.Validate(); err != nil {
		return nil, NewPlanServiceError("update", "invalid plan", err)
	}

	if err := s.planStore.Update(ctx, plan); err != nil {
		if errors.Is(err, store.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		log.Error("failed to update plan",
			slog.String("plan_id", id.String()),
			slog.String("error", err.Error()))
		return nil, NewPlanServiceError("update", "failed to store plan", err)
	}

	return plan, nil
}

// DeletePlan implements PlanService.DeletePlan.
func (s *planServiceImpl) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if err := s.planStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrPlanNotFound) {
			return ErrPlanNotFound
		}
		return NewPlanServiceError("delete", "failed to delete plan", err)
	}
	return nil
}
