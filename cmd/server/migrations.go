package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/platform/postgres"
)

// handleMigrations runs one goose command against db.
// It's called from run() when the -migrate flag is set.
func handleMigrations(ctx context.Context, db *sqlx.DB, command string, logger *slog.Logger) error {
	// A correlation ID ties together every log line of one migration run.
	migrationLogger := logger.With(
		"correlation_id", uuid.NewString(),
		"component", "migrations",
		"command", command,
	)

	start := time.Now()
	migrationLogger.Info("Starting migration operation")

	if err := postgres.Migrate(ctx, db.DB, command, migrationLogger); err != nil {
		migrationLogger.Error("Migration operation failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("migration failed: %w", err)
	}

	migrationLogger.Info("Migration operation completed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
