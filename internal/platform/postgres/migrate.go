package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/pressly/goose/v3"
)

// MigrationsDir is the directory of the embedded goose migrations.
const MigrationsDir = "migrations"

// migrationTableName keeps goose's bookkeeping table name stable across goose versions.
const migrationTableName = "schema_migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationCommands lists the goose commands Migrate accepts.
var MigrationCommands = []string{"up", "down", "reset", "status", "version"}

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// slogGooseLogger implements the goose.Logger interface on top of slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages to slog.Error.
// goose returns the error to the caller as well, so the process is not terminated here.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// Migrate runs one goose command against db using the embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !slices.Contains(MigrationCommands, command) {
		return fmt.Errorf("unknown migration command %q (want one of %v)", command, MigrationCommands)
	}
	if logger == nil {
		logger = slog.Default()
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&slogGooseLogger{logger: logger.With(slog.String("component", "migrations"))})
	goose.SetTableName(migrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, MigrationsDir); err != nil {
		return fmt.Errorf("migration command %q failed: %w", command, err)
	}
	return nil
}
