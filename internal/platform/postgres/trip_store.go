package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// mode is nullable in the table; the domain uses "" for unspecified.
const tripColumns = "id, date_start, date_end, transporter, COALESCE(mode, '') AS mode, " +
	"location_start, location_end, itinerary_id"

// PostgresTripStore implements the store.TripStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTripStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTripStore creates a new PostgreSQL implementation of the TripStore interface.
func NewPostgresTripStore(db store.DBTX, logger *slog.Logger) *PostgresTripStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresTripStore{db: db, logger: componentLogger(logger, "trip_store")}
}

// Ensure PostgresTripStore implements store.TripStore interface
var _ store.TripStore = (*PostgresTripStore)(nil)

// List implements store.TripStore.List
// The location filter matches either end of the trip.
func (s *PostgresTripStore) List(
	ctx context.Context,
	filter store.TripFilter,
	page store.Page,
) ([]domain.Trip, int, error) {
	q := newListQuery("trips", tripColumns, "id")
	if filter.Mode != "" {
		q.equals("mode", filter.Mode)
	}
	q.contains("transporter", filter.Transporter)
	q.containsAny([]string{"location_start", "location_end"}, filter.Location)
	if filter.StartDate != nil {
		q.atLeast("date_start", *filter.StartDate)
	}
	if filter.ItineraryID != nil {
		q.equals("itinerary_id", *filter.ItineraryID)
	}

	trips, total, err := runList[domain.Trip](ctx, s.db, q, page)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list trips",
			slog.String("error", err.Error()))
		return nil, 0, err
	}
	return trips, total, nil
}

// ListByItineraries implements store.TripStore.ListByItineraries
func (s *PostgresTripStore) ListByItineraries(ctx context.Context, itineraryIDs []int64) ([]domain.Trip, error) {
	trips, err := selectIn[domain.Trip](ctx, s.db,
		"SELECT "+tripColumns+" FROM trips WHERE itinerary_id IN (?) ORDER BY itinerary_id, date_start, id",
		itineraryIDs)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load trips for itineraries",
			slog.String("error", err.Error()),
			slog.Int("itinerary_count", len(itineraryIDs)))
		return nil, err
	}
	return trips, nil
}

// GetByID implements store.TripStore.GetByID
// Returns store.ErrTripNotFound if the trip does not exist.
func (s *PostgresTripStore) GetByID(ctx context.Context, id int64) (*domain.Trip, error) {
	var trip domain.Trip
	err := sqlx.GetContext(ctx, s.db, &trip,
		"SELECT "+tripColumns+" FROM trips WHERE id = $1", id)
	if err != nil {
		return nil, MapError(err, store.ErrTripNotFound)
	}
	return &trip, nil
}

// Create implements store.TripStore.Create
func (s *PostgresTripStore) Create(ctx context.Context, trip *domain.Trip) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO trips (date_start, date_end, transporter, mode, location_start, location_end, itinerary_id)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
		RETURNING id`,
		trip.DateStart, trip.DateEnd, trip.Transporter, string(trip.Mode),
		trip.LocationStart, trip.LocationEnd, trip.ItineraryID,
	).Scan(&trip.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("trip references missing itinerary", slog.Int64("itinerary_id", trip.ItineraryID))
		} else {
			log.Error("failed to create trip", slog.String("error", err.Error()))
		}
		return MapError(err, nil)
	}

	log.Debug("trip created",
		slog.Int64("trip_id", trip.ID),
		slog.Int64("itinerary_id", trip.ItineraryID))
	return nil
}

// Update implements store.TripStore.Update
func (s *PostgresTripStore) Update(ctx context.Context, trip *domain.Trip) error {
	return execAffecting(ctx, s.db, store.ErrTripNotFound, `
		UPDATE trips
		SET date_start = $1, date_end = $2, transporter = $3, mode = NULLIF($4, ''),
		    location_start = $5, location_end = $6, itinerary_id = $7
		WHERE id = $8`,
		trip.DateStart, trip.DateEnd, trip.Transporter, string(trip.Mode),
		trip.LocationStart, trip.LocationEnd, trip.ItineraryID, trip.ID,
	)
}

// Delete implements store.TripStore.Delete
func (s *PostgresTripStore) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, s.db, store.ErrTripNotFound,
		"DELETE FROM trips WHERE id = $1", id)
}
