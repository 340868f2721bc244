package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/planwell/planwell-api/internal/api"
	apiMiddleware "github.com/planwell/planwell-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	planHandler := api.NewPlanHandler(app.planService, app.plannerService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/plans", planHandler.CreatePlan)
		r.Get("/plans/{id}", planHandler.GetPlan)
		r.Put("/plans/{id}", planHandler.UpdatePlan)
		r.Delete("/plans/{id}", planHandler.DeletePlan)

		// Optimization endpoint
		r.Post("/plans/{id}/optimize", planHandler.OptimizePlan)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
