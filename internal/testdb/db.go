// Package testdb provides utilities specifically for database integration tests.
// Tests that use it are skipped unless DATABASE_URL points at a PostgreSQL
// instance the tests may freely migrate and truncate.
package testdb

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// tables lists every application table, children first.
var tables = []string{"lodgings", "trips", "itineraries", "users", "agents", "agencies"}

var (
	migrateOnce sync.Once
	migrateErr  error
)

// IsIntegrationTestEnvironment returns true if the DATABASE_URL environment
// variable is set, indicating that integration tests can be run.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDatabaseURL returns the database URL for tests.
func GetTestDatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// GetTestDB returns a migrated database with every table emptied and its
// id sequences restarted. It skips the test if DATABASE_URL is not set.
func GetTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	db, err := sqlx.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed")

	migrateOnce.Do(func() {
		migrateErr = postgres.Migrate(context.Background(), db.DB, "up", nil)
	})
	require.NoError(t, migrateErr, "Failed to run migrations")

	ResetTables(t, db)
	return db
}

// ResetTables truncates every application table and restarts id sequences.
func ResetTables(t *testing.T, db *sqlx.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	query := "TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	_, err := db.ExecContext(ctx, query)
	require.NoError(t, err, "Failed to truncate tables")
}
