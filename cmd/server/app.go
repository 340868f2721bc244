package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/planwell/planwell-api/internal/config"
	"github.com/planwell/planwell-api/internal/platform/catalog"
	"github.com/planwell/planwell-api/internal/platform/postgres"
	"github.com/planwell/planwell-api/internal/service"
	"github.com/planwell/planwell-api/internal/service/planner"
)

// application holds the server's wired dependencies. All services share one
// database handle; stores are cheap wrappers around it.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	planService    service.PlanService
	plannerService planner.PlannerService
}

// newApplication connects to the database and wires up stores, the catalog
// client, and the services.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	planStore := postgres.NewPostgresPlanStore(db, logger)

	catalogTimeout := time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, catalogTimeout, logger)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		planService:    service.NewPlanService(planStore, logger),
		plannerService: planner.NewPlannerService(planStore, db, catalogClient, catalogTimeout, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
