package planner

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/planwell/planwell-api/internal/domain/schedule"
	"github.com/planwell/planwell-api/internal/platform/catalog"
	"github.com/planwell/planwell-api/internal/platform/logger"
	"github.com/planwell/planwell-api/internal/store"
)

// Verify interface compliance at compile time
var _ PlannerService = (*plannerServiceImpl)(nil)

// plannerServiceImpl implements the PlannerService interface.
type plannerServiceImpl struct {
	planStore      store.PlanStore
	db             *sql.DB
	catalogLookup  catalog.Lookup
	catalogTimeout time.Duration
	logger         *slog.Logger
}

// NewPlannerService creates a new PlannerService implementation.
// db is the connection the load-optimize-persist transaction runs on;
// catalogTimeout bounds the catalog fetch and must be positive.
func NewPlannerService(
	planStore store.PlanStore,
	db *sql.DB,
	catalogLookup catalog.Lookup,
	catalogTimeout time.Duration,
	logger *slog.Logger,
) PlannerService {
	// Validate inputs
	if planStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("planStore cannot be nil")
	}
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if catalogLookup == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalogLookup cannot be nil")
	}
	if catalogTimeout <= 0 {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalogTimeout must be positive")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &plannerServiceImpl{
		planStore:      planStore,
		db:             db,
		catalogLookup:  catalogLookup,
		catalogTimeout: catalogTimeout,
		logger:         logger.With(slog.String("component", "planner_service")),
	}
}

// Optimize implements PlannerService.Optimize. The load-optimize-persist
// sequence runs in a single transaction so the stored plan is replaced
// atomically against the state that was read.
func (s *plannerServiceImpl) Optimize(
	ctx context.Context,
	planID uuid.UUID,
	req OptimizeRequest,
) (*OptimizeResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Speed.Validate(); err != nil {
		log.Warn("invalid speed policy", slog.String("speed", string(req.Speed)))
		return nil, err
	}

	// The catalog fetch happens before the transaction opens so the
	// transaction is never held across network I/O; its failure only
	// degrades the run to text-only extraction.
	index, catalogWarning := s.fetchCatalog(ctx, log)

	var result *OptimizeResult
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.planStore.WithTx(tx)

		plan, err := txStore.GetByID(ctx, planID)
		if err != nil {
			if errors.Is(err, store.ErrPlanNotFound) {
				log.Debug("plan not found", slog.String("plan_id", planID.String()))
				return ErrPlanNotFound
			}
			log.Error("failed to load plan",
				slog.String("plan_id", planID.String()),
				slog.String("error", err.Error()))
			return NewOptimizeError("failed to load plan", err)
		}

		newPlan, warnings, err := schedule.Optimize(plan, index, req.Speed)
		if err != nil {
			log.Error("optimizer rejected plan",
				slog.String("plan_id", planID.String()),
				slog.String("error", err.Error()))
			return NewOptimizeError("optimizer rejected plan", err)
		}
		if catalogWarning != nil {
			warnings = append([]schedule.Warning{*catalogWarning}, warnings...)
		}

		newPlan.UpdatedAt = time.Now().UTC()
		if err := txStore.Update(ctx, newPlan); err != nil {
			log.Error("failed to persist optimized plan",
				slog.String("plan_id", planID.String()),
				slog.String("error", err.Error()))
			return NewOptimizeError("failed to persist optimized plan", err)
		}

		result = &OptimizeResult{
			Plan:     newPlan,
			Warnings: warnings,
			Fallback: schedule.HasFallback(warnings),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("plan optimized",
		slog.String("plan_id", planID.String()),
		slog.String("speed", string(req.Speed)),
		slog.Int("warnings", len(result.Warnings)),
		slog.Bool("fallback", result.Fallback))

	return result, nil
}

// fetchCatalog retrieves and indexes catalog metadata under the configured
// timeout. On failure it returns a nil index and a warning; the optimizer
// then works from course text alone.
func (s *plannerServiceImpl) fetchCatalog(
	ctx context.Context,
	log *slog.Logger,
) (map[string]schedule.CatalogCourse, *schedule.Warning) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.catalogTimeout)
	defer cancel()

	courses, err := s.catalogLookup.GetCourses(fetchCtx, "")
	if err != nil {
		log.Warn("catalog fetch failed, continuing with text-only extraction",
			slog.String("error", err.Error()))
		return nil, &schedule.Warning{
			Kind:    schedule.WarnCatalogUnavailable,
			Message: "catalog unavailable; prerequisites derived from course text only",
		}
	}

	return catalog.BuildIndex(courses), nil
}
