package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/itinerary-api/internal/api"
	apiMiddleware "github.com/phrazzld/itinerary-api/internal/api/middleware"
	"github.com/phrazzld/itinerary-api/internal/redact"
)

// healthTimeout bounds the database ping behind GET /health.
const healthTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	// /api/trips/ and /api/trips reach the same handler
	r.Use(middleware.StripSlashes)

	handlers := api.NewHandlers(app.services, app.config.Pagination, app.logger)
	r.Route(api.BasePath, handlers.Routes)

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth answers 200 OK while the database responds to a ping and 503
// otherwise.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status, body := http.StatusOK, "OK"
	if err := app.health.Ping(ctx); err != nil {
		app.logger.Error("Health check failed", "error", redact.Error(err))
		status, body = http.StatusServiceUnavailable, "database unavailable"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
