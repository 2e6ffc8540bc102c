package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/phrazzld/itinerary-api/internal/store"
)

const lodgingColumns = "id, date_start, date_end, name, address, phone, room_count, itinerary_id"

// PostgresLodgingStore implements the store.LodgingStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLodgingStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLodgingStore creates a new PostgreSQL implementation of the LodgingStore interface.
func NewPostgresLodgingStore(db store.DBTX, logger *slog.Logger) *PostgresLodgingStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresLodgingStore{db: db, logger: componentLogger(logger, "lodging_store")}
}

// Ensure PostgresLodgingStore implements store.LodgingStore interface
var _ store.LodgingStore = (*PostgresLodgingStore)(nil)

// List implements store.LodgingStore.List
func (s *PostgresLodgingStore) List(
	ctx context.Context,
	filter store.LodgingFilter,
	page store.Page,
) ([]domain.Lodging, int, error) {
	q := newListQuery("lodgings", lodgingColumns, "id")
	q.contains("name", filter.Name)
	if filter.StartDate != nil {
		q.atLeast("date_start", *filter.StartDate)
	}
	if filter.MinRooms != nil {
		q.atLeast("room_count", *filter.MinRooms)
	}
	if filter.ItineraryID != nil {
		q.equals("itinerary_id", *filter.ItineraryID)
	}

	lodgings, total, err := runList[domain.Lodging](ctx, s.db, q, page)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list lodgings",
			slog.String("error", err.Error()))
		return nil, 0, err
	}
	return lodgings, total, nil
}

// ListByItineraries implements store.LodgingStore.ListByItineraries
func (s *PostgresLodgingStore) ListByItineraries(
	ctx context.Context,
	itineraryIDs []int64,
) ([]domain.Lodging, error) {
	lodgings, err := selectIn[domain.Lodging](ctx, s.db,
		"SELECT "+lodgingColumns+" FROM lodgings WHERE itinerary_id IN (?) ORDER BY itinerary_id, date_start, id",
		itineraryIDs)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load lodgings for itineraries",
			slog.String("error", err.Error()),
			slog.Int("itinerary_count", len(itineraryIDs)))
		return nil, err
	}
	return lodgings, nil
}

// GetByID implements store.LodgingStore.GetByID
// Returns store.ErrLodgingNotFound if the lodging does not exist.
func (s *PostgresLodgingStore) GetByID(ctx context.Context, id int64) (*domain.Lodging, error) {
	var lodging domain.Lodging
	err := sqlx.GetContext(ctx, s.db, &lodging,
		"SELECT "+lodgingColumns+" FROM lodgings WHERE id = $1", id)
	if err != nil {
		return nil, MapError(err, store.ErrLodgingNotFound)
	}
	return &lodging, nil
}

// Create implements store.LodgingStore.Create
func (s *PostgresLodgingStore) Create(ctx context.Context, lodging *domain.Lodging) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO lodgings (date_start, date_end, name, address, phone, room_count, itinerary_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		lodging.DateStart, lodging.DateEnd, lodging.Name, lodging.Address,
		lodging.Phone, lodging.RoomCount, lodging.ItineraryID,
	).Scan(&lodging.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("lodging references missing itinerary", slog.Int64("itinerary_id", lodging.ItineraryID))
		} else {
			log.Error("failed to create lodging", slog.String("error", err.Error()))
		}
		return MapError(err, nil)
	}

	log.Debug("lodging created",
		slog.Int64("lodging_id", lodging.ID),
		slog.Int64("itinerary_id", lodging.ItineraryID))
	return nil
}

// Update implements store.LodgingStore.Update
func (s *PostgresLodgingStore) Update(ctx context.Context, lodging *domain.Lodging) error {
	return execAffecting(ctx, s.db, store.ErrLodgingNotFound, `
		UPDATE lodgings
		SET date_start = $1, date_end = $2, name = $3, address = $4, phone = $5,
		    room_count = $6, itinerary_id = $7
		WHERE id = $8`,
		lodging.DateStart, lodging.DateEnd, lodging.Name, lodging.Address,
		lodging.Phone, lodging.RoomCount, lodging.ItineraryID, lodging.ID,
	)
}

// Delete implements store.LodgingStore.Delete
func (s *PostgresLodgingStore) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, s.db, store.ErrLodgingNotFound,
		"DELETE FROM lodgings WHERE id = $1", id)
}
