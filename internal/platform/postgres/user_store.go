package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/phrazzld/itinerary-api/internal/store"
)

const userColumns = "id, name, email, agency_id"

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresUserStore{db: db, logger: componentLogger(logger, "user_store")}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// List implements store.UserStore.List
func (s *PostgresUserStore) List(
	ctx context.Context,
	filter store.UserFilter,
	page store.Page,
) ([]domain.User, int, error) {
	q := newListQuery("users", userColumns, "id")
	q.contains("name", filter.Name)
	q.contains("email", filter.Email)
	if filter.AgencyID != nil {
		q.equals("agency_id", *filter.AgencyID)
	}

	users, total, err := runList[domain.User](ctx, s.db, q, page)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list users",
			slog.String("error", err.Error()))
		return nil, 0, err
	}
	return users, total, nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := sqlx.GetContext(ctx, s.db, &user,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	if err != nil {
		return nil, MapError(err, store.ErrUserNotFound)
	}
	return &user, nil
}

// Create implements store.UserStore.Create
// Returns store.ErrEmailExists if the email is taken, or a validation error
// on agency_id if the agency does not exist.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO users (name, email, agency_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		user.Name, user.Email, user.AgencyID,
	).Scan(&user.ID)
	if err != nil {
		if IsUniqueViolation(err) || IsForeignKeyViolation(err) {
			log.Debug("user rejected by constraint", slog.String("error", err.Error()))
		} else {
			log.Error("failed to create user", slog.String("error", err.Error()))
		}
		return MapError(err, nil)
	}

	log.Debug("user created",
		slog.Int64("user_id", user.ID),
		slog.Int64("agency_id", user.AgencyID))
	return nil
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	return execAffecting(ctx, s.db, store.ErrUserNotFound, `
		UPDATE users
		SET name = $1, email = $2, agency_id = $3
		WHERE id = $4`,
		user.Name, user.Email, user.AgencyID, user.ID,
	)
}

// Delete implements store.UserStore.Delete
// Itineraries of the user are removed by the ON DELETE CASCADE foreign key.
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, s.db, store.ErrUserNotFound,
		"DELETE FROM users WHERE id = $1", id)
}
