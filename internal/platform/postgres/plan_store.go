package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/planwell/planwell-api/internal/domain"
	"github.com/planwell/planwell-api/internal/platform/logger"
	"github.com/planwell/planwell-api/internal/store"
)

// PostgresPlanStore implements the store.PlanStore interface
// using a PostgreSQL database as the storage backend. Plan years are stored
// as a single JSONB document; the optimizer always replaces the whole plan,
// so a one-row UPDATE gives the atomic swap the caller expects.
type PostgresPlanStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPlanStore creates a new PostgreSQL implementation of the PlanStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPlanStore(db store.DBTX, logger *slog.Logger) *PostgresPlanStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPlanStore{
		db:     db,
		logger: logger.With(slog.String("component", "plan_store")),
	}
}

// Ensure PostgresPlanStore implements store.PlanStore interface
var _ store.PlanStore = (*PostgresPlanStore)(nil)

// WithTx implements store.PlanStore.WithTx
func (s *PostgresPlanStore) WithTx(tx store.DBTX) store.PlanStore {
	return &PostgresPlanStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PlanStore.Create
func (s *PostgresPlanStore) Create(ctx context.Context, plan *domain.DegreePlan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := plan.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	years, err := json.Marshal(plan.Years)
	if err != nil {
		return fmt.Errorf("failed to encode plan years: %w", err)
	}

	query := `
		INSERT INTO plans (id, owner_id, name, achieved_credits, years, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = s.db.ExecContext(ctx, query,
		plan.ID, plan.OwnerID, plan.Name, plan.AchievedCredits, years,
		plan.CreatedAt, plan.UpdatedAt)
	if err != nil {
		log.Error("failed to create plan",
			slog.String("plan_id", plan.ID.String()),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("plan created", slog.String("plan_id", plan.ID.String()))
	return nil
}

// GetByID implements store.PlanStore.GetByID
func (s *PostgresPlanStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.DegreePlan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, name, achieved_credits, years, created_at, updated_at
		FROM plans
		WHERE id = $1`

	var plan domain.DegreePlan
	var years []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&plan.ID, &plan.OwnerID, &plan.Name, &plan.AchievedCredits, &years,
		&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if mapped := MapError(err); errors.Is(mapped, store.ErrNotFound) {
			return nil, store.ErrPlanNotFound
		}
		log.Error("failed to get plan",
			slog.String("plan_id", id.String()),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if err := json.Unmarshal(years, &plan.Years); err != nil {
		return nil, fmt.Errorf("failed to decode plan years: %w", err)
	}

	return &plan, nil
}

// Update implements store.PlanStore.Update
func (s *PostgresPlanStore) Update(ctx context.Context, plan *domain.DegreePlan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := plan.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	years, err := json.Marshal(plan.Years)
	if err != nil {
		return fmt.Errorf("failed to encode plan years: %w", err)
	}

	query := `
		UPDATE plans
		SET name = $2, achieved_credits = $3, years = $4, updated_at = $5
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query,
		plan.ID, plan.Name, plan.AchievedCredits, years, plan.UpdatedAt)
	if err != nil {
		log.Error("failed to update plan",
			slog.String("plan_id", plan.ID.String()),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "plan"); err != nil {
		return store.ErrPlanNotFound
	}

	log.Debug("plan updated", slog.String("plan_id", plan.ID.String()))
	return nil
}

// Delete implements store.PlanStore.Delete
func (s *PostgresPlanStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete plan",
			slog.String("plan_id", id.String()),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "plan"); err != nil {
		return store.ErrPlanNotFound
	}

	log.Debug("plan deleted", slog.String("plan_id", id.String()))
	return nil
}
