// Package main implements the entry point for the itinerary API server,
// which manages travel agencies, their users and the users' itineraries.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/phrazzld/itinerary-api/internal/redact"
)

// options are the command-line switches of the server binary.
type options struct {
	// migrate is a goose command to run before exiting instead of serving.
	migrate string
	// seed loads the demo data and exits.
	seed bool
}

// parseFlags parses the command-line arguments (without the program name).
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrate, "migrate", "", "Run a database migration command (up|down|reset|status|version) and exit")
	fs.BoolVar(&opts.seed, "seed", false, "Load the demo data set and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.migrate != "" && opts.seed {
		return options{}, fmt.Errorf("-migrate and -seed cannot be combined")
	}
	return opts, nil
}

// main is the entry point for the itinerary-api server.
func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	if err := run(context.Background(), opts); err != nil {
		slog.Error("Server exited with error", "error", redact.Error(err))
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and then serves HTTP,
// migrates or seeds depending on opts.
func run(ctx context.Context, opts options) error {
	cfg, err := initializeApp()
	if err != nil {
		return err
	}
	l := slog.Default()

	db, err := setupAppDatabase(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer closeDB(db, l)
		return handleMigrations(ctx, db, opts.migrate, l)
	}

	app := newApplication(cfg, l, db)
	if opts.seed {
		defer app.cleanup()
		return seedDemoData(ctx, app.services, l)
	}
	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"default_per_page", cfg.Pagination.DefaultPerPage,
		"max_per_page", cfg.Pagination.MaxPerPage)
	slog.Debug("Database configuration",
		"url", redact.String(cfg.Database.URL),
		"max_open_conns", cfg.Database.MaxOpenConns)

	return cfg, nil
}
