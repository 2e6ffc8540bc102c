package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/phrazzld/itinerary-api/internal/store"
)

const agencyColumns = "id, name, phone, address, logo"

// PostgresAgencyStore implements the store.AgencyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAgencyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAgencyStore creates a new PostgreSQL implementation of the AgencyStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAgencyStore(db store.DBTX, logger *slog.Logger) *PostgresAgencyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresAgencyStore{db: db, logger: componentLogger(logger, "agency_store")}
}

// Ensure PostgresAgencyStore implements store.AgencyStore interface
var _ store.AgencyStore = (*PostgresAgencyStore)(nil)

// List implements store.AgencyStore.List
func (s *PostgresAgencyStore) List(
	ctx context.Context,
	filter store.AgencyFilter,
	page store.Page,
) ([]domain.Agency, int, error) {
	q := newListQuery("agencies", agencyColumns, "name, id")
	q.contains("name", filter.Name)

	agencies, total, err := runList[domain.Agency](ctx, s.db, q, page)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list agencies",
			slog.String("error", err.Error()))
		return nil, 0, err
	}
	return agencies, total, nil
}

// GetByID implements store.AgencyStore.GetByID
// Returns store.ErrAgencyNotFound if the agency does not exist.
func (s *PostgresAgencyStore) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	var agency domain.Agency
	err := sqlx.GetContext(ctx, s.db, &agency,
		"SELECT "+agencyColumns+" FROM agencies WHERE id = $1", id)
	if err != nil {
		return nil, MapError(err, store.ErrAgencyNotFound)
	}
	return &agency, nil
}

// Create implements store.AgencyStore.Create
// The generated ID is written back into agency.
func (s *PostgresAgencyStore) Create(ctx context.Context, agency *domain.Agency) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO agencies (name, phone, address, logo)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		agency.Name, agency.Phone, agency.Address, agency.Logo,
	).Scan(&agency.ID)
	if err != nil {
		log.Error("failed to create agency", slog.String("error", err.Error()))
		return MapError(err, nil)
	}

	log.Debug("agency created", slog.Int64("agency_id", agency.ID))
	return nil
}

// Update implements store.AgencyStore.Update
// Returns store.ErrAgencyNotFound if the agency does not exist.
func (s *PostgresAgencyStore) Update(ctx context.Context, agency *domain.Agency) error {
	return execAffecting(ctx, s.db, store.ErrAgencyNotFound, `
		UPDATE agencies
		SET name = $1, phone = $2, address = $3, logo = $4
		WHERE id = $5`,
		agency.Name, agency.Phone, agency.Address, agency.Logo, agency.ID,
	)
}

// Delete implements store.AgencyStore.Delete
// Users of the agency are removed by the ON DELETE CASCADE foreign key.
func (s *PostgresAgencyStore) Delete(ctx context.Context, id int64) error {
	if err := execAffecting(ctx, s.db, store.ErrAgencyNotFound,
		"DELETE FROM agencies WHERE id = $1", id); err != nil {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("agency deleted", slog.Int64("agency_id", id))
	return nil
}
