package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// SessionProvider implements store.SessionProvider on a *sqlx.DB. Every
// session is one transaction, and the stores it hands out are bound to it.
type SessionProvider struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewSessionProvider creates a SessionProvider. If logger is nil, a default logger is used.
func NewSessionProvider(db *sqlx.DB, logger *slog.Logger) *SessionProvider {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionProvider{db: db, logger: logger}
}

// Ensure SessionProvider implements store.SessionProvider interface
var _ store.SessionProvider = (*SessionProvider)(nil)

// InSession implements store.SessionProvider.InSession
func (p *SessionProvider) InSession(ctx context.Context, fn store.SessionFn) error {
	return p.run(ctx, nil, fn)
}

// InReadSession implements store.SessionProvider.InReadSession
func (p *SessionProvider) InReadSession(ctx context.Context, fn store.SessionFn) error {
	return p.run(ctx, store.ReadOnly, fn)
}

func (p *SessionProvider) run(ctx context.Context, opts *sql.TxOptions, fn store.SessionFn) error {
	return store.RunInTransaction(ctx, p.db, opts, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(ctx, NewStores(tx, p.logger))
	})
}

// NewStores binds every PostgreSQL store to db, which may be a handle or a transaction.
func NewStores(db store.DBTX, logger *slog.Logger) store.Stores {
	return store.Stores{
		Agencies:    NewPostgresAgencyStore(db, logger),
		Agents:      NewPostgresAgentStore(db, logger),
		Users:       NewPostgresUserStore(db, logger),
		Itineraries: NewPostgresItineraryStore(db, logger),
		Trips:       NewPostgresTripStore(db, logger),
		Lodgings:    NewPostgresLodgingStore(db, logger),
	}
}

// Ping checks that the database answers.
func (p *SessionProvider) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
