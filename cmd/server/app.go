package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/api"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/platform/postgres"
	"github.com/phrazzld/itinerary-api/internal/service"
)

// pinger reports whether the database answers.
type pinger interface {
	Ping(ctx context.Context) error
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	// health is consulted by GET /health.
	health   pinger
	services api.Services
}

// newApplication wires the session provider, the services and their loggers on
// top of an open database handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) *application {
	sessions := postgres.NewSessionProvider(db, logger.With("component", "postgres"))

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		health: sessions,
		services: api.Services{
			Agencies:    service.NewAgencyService(sessions, logger),
			Agents:      service.NewAgentService(sessions, logger),
			Users:       service.NewUserService(sessions, logger),
			Itineraries: service.NewItineraryService(sessions, logger),
			Trips:       service.NewTripService(sessions, logger),
			Lodgings:    service.NewLodgingService(sessions, logger),
		},
	}

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("Application shutdown completed")
}
