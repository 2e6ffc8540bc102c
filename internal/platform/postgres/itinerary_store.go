package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/phrazzld/itinerary-api/internal/store"
)

const itineraryColumns = "id, tour_name, date_start, date_end, user_id"

// PostgresItineraryStore implements the store.ItineraryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItineraryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItineraryStore creates a new PostgreSQL implementation of the ItineraryStore interface.
func NewPostgresItineraryStore(db store.DBTX, logger *slog.Logger) *PostgresItineraryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresItineraryStore{db: db, logger: componentLogger(logger, "itinerary_store")}
}

// Ensure PostgresItineraryStore implements store.ItineraryStore interface
var _ store.ItineraryStore = (*PostgresItineraryStore)(nil)

// List implements store.ItineraryStore.List
// Itineraries are ordered by start date.
func (s *PostgresItineraryStore) List(
	ctx context.Context,
	filter store.ItineraryFilter,
	page store.Page,
) ([]domain.Itinerary, int, error) {
	q := newListQuery("itineraries", itineraryColumns, "date_start, id")
	q.contains("tour_name", filter.TourName)
	if filter.StartDate != nil {
		q.atLeast("date_start", *filter.StartDate)
	}
	if filter.UserID != nil {
		q.equals("user_id", *filter.UserID)
	}

	itineraries, total, err := runList[domain.Itinerary](ctx, s.db, q, page)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list itineraries",
			slog.String("error", err.Error()))
		return nil, 0, err
	}
	return itineraries, total, nil
}

// GetByID implements store.ItineraryStore.GetByID
// Returns store.ErrItineraryNotFound if the itinerary does not exist.
func (s *PostgresItineraryStore) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	var itinerary domain.Itinerary
	err := sqlx.GetContext(ctx, s.db, &itinerary,
		"SELECT "+itineraryColumns+" FROM itineraries WHERE id = $1", id)
	if err != nil {
		return nil, MapError(err, store.ErrItineraryNotFound)
	}
	return &itinerary, nil
}

// Create implements store.ItineraryStore.Create
func (s *PostgresItineraryStore) Create(ctx context.Context, itinerary *domain.Itinerary) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO itineraries (tour_name, date_start, date_end, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		itinerary.TourName, itinerary.DateStart, itinerary.DateEnd, itinerary.UserID,
	).Scan(&itinerary.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("itinerary references missing user", slog.Int64("user_id", itinerary.UserID))
		} else {
			log.Error("failed to create itinerary", slog.String("error", err.Error()))
		}
		return MapError(err, nil)
	}

	log.Debug("itinerary created",
		slog.Int64("itinerary_id", itinerary.ID),
		slog.Int64("user_id", itinerary.UserID))
	return nil
}

// Update implements store.ItineraryStore.Update
func (s *PostgresItineraryStore) Update(ctx context.Context, itinerary *domain.Itinerary) error {
	return execAffecting(ctx, s.db, store.ErrItineraryNotFound, `
		UPDATE itineraries
		SET tour_name = $1, date_start = $2, date_end = $3, user_id = $4
		WHERE id = $5`,
		itinerary.TourName, itinerary.DateStart, itinerary.DateEnd, itinerary.UserID, itinerary.ID,
	)
}

// Delete implements store.ItineraryStore.Delete
// Trips and lodgings are removed by the ON DELETE CASCADE foreign keys.
func (s *PostgresItineraryStore) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, s.db, store.ErrItineraryNotFound,
		"DELETE FROM itineraries WHERE id = $1", id)
}
