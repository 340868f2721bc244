// Package main implements the entry point for the PlanWell API server,
// which stores degree plans and runs the multi-term schedule optimizer
// against them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/planwell/planwell-api/internal/config"
	"github.com/planwell/planwell-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status, version) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("planwell-api: %v", err)
	}
}

// run loads configuration, sets up logging, and either executes a migration
// command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	if migrateCmd != "" {
		return runMigrations(cfg, migrateCmd)
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
