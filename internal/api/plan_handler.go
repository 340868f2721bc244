package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/planwell/planwell-api/internal/api/shared"
	"github.com/planwell/planwell-api/internal/domain"
	"github.com/planwell/planwell-api/internal/platform/logger"
	"github.com/planwell/planwell-api/internal/service"
	"github.com/planwell/planwell-api/internal/service/planner"
)

// PlanHandler handles degree-plan HTTP requests.
type PlanHandler struct {
	planService    service.PlanService
	plannerService planner.PlannerService
	logger         *slog.Logger
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(
	planService service.PlanService,
	plannerService planner.PlannerService,
	logger *slog.Logger,
) *PlanHandler {
	if planService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("planService cannot be nil for PlanHandler")
	}
	if plannerService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("plannerService cannot be nil for PlanHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlanHandler")
	}

	return &PlanHandler{
		planService:    planService,
		plannerService: plannerService,
		logger:         logger.With(slog.String("component", "plan_handler")),
	}
}

// CreatePlan handles POST /plans requests.
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreatePlanRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed plan payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid plan data")
		return
	}

	plan, err := h.planService.CreatePlan(r.Context(), req.OwnerID, req.Name, req.Years, req.AchievedCredits)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("plan created",
		slog.String("plan_id", plan.ID.String()),
		slog.String("owner_id", plan.OwnerID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, planToResponse(plan))
}

// GetPlan handles GET /plans/{id} requests.
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	plan, err := h.planService.GetPlan(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, planToResponse(plan))
}

// UpdatePlan handles PUT /plans/{id} requests. The stored plan is replaced
// wholesale; partial updates are not supported.
func (h *PlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdatePlanRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed plan payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid plan data")
		return
	}

	plan, err := h.planService.UpdatePlan(r.Context(), id, req.Name, req.Years, req.AchievedCredits)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, planToResponse(plan))
}

// DeletePlan handles DELETE /plans/{id} requests.
func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.planService.DeletePlan(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// OptimizePlan handles POST /plans/{id}/optimize requests. It runs the
// schedule optimizer against the stored plan and returns the rebuilt plan
// together with any warnings. A degraded run (catalog down, fallback
// placements) still returns 200; the warnings carry the details.
func (h *PlanHandler) OptimizePlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req OptimizePlanRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed optimize payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(domain.ErrInvalidSpeed))
		return
	}

	result, err := h.plannerService.Optimize(r.Context(), id, planner.OptimizeRequest{
		Speed: domain.Speed(req.Speed),
	})
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError && !errors.Is(err, planner.ErrPlanNotFound) {
			safeMessage = "Failed to optimize plan"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("plan optimized",
		slog.String("plan_id", id.String()),
		slog.Int("warnings", len(result.Warnings)),
		slog.Bool("fallback", result.Fallback))
	shared.RespondWithJSON(w, r, http.StatusOK, OptimizeResponse{
		Plan:     planToResponse(result.Plan),
		Warnings: warningsToResponse(result.Warnings),
		Fallback: result.Fallback,
	})
}
