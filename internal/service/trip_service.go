package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// TripService provides trip operations.
type TripService interface {
	List(ctx context.Context, filter store.TripFilter, page store.Page) ([]domain.Trip, int, error)
	Get(ctx context.Context, id int64) (*domain.Trip, error)
	// Create rejects trips that end before they start; nothing is stored.
	Create(ctx context.Context, trip *domain.Trip) error
	Update(ctx context.Context, id int64, patch domain.TripPatch) (*domain.Trip, error)
	Delete(ctx context.Context, id int64) error
}

type tripService struct {
	base
}

// NewTripService creates a new TripService
func NewTripService(sessions store.SessionProvider, logger *slog.Logger) TripService {
	return &tripService{base: newBase("trip", sessions, logger)}
}

func (s *tripService) List(
	ctx context.Context,
	filter store.TripFilter,
	page store.Page,
) ([]domain.Trip, int, error) {
	var (
		trips []domain.Trip
		total int
	)
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		trips, total, err = st.Trips.List(ctx, filter, page)
		return err
	})
	if err != nil {
		return nil, 0, s.fail(ctx, "list", "failed to list trips", err)
	}
	return trips, total, nil
}

func (s *tripService) Get(ctx context.Context, id int64) (*domain.Trip, error) {
	var trip *domain.Trip
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		trip, err = st.Trips.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "get", "failed to retrieve trip", err)
	}
	return trip, nil
}

func (s *tripService) Create(ctx context.Context, trip *domain.Trip) error {
	if err := trip.Validate(); err != nil {
		return s.fail(ctx, "create", "trip validation failed", err)
	}
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Trips.Create(ctx, trip)
	})
	if err != nil {
		return s.fail(ctx, "create", "failed to create trip", err)
	}

	s.log(ctx).Info("trip created",
		slog.Int64("trip_id", trip.ID),
		slog.Int64("itinerary_id", trip.ItineraryID))
	return nil
}

func (s *tripService) Update(ctx context.Context, id int64, patch domain.TripPatch) (*domain.Trip, error) {
	var trip *domain.Trip
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		current, err := st.Trips.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(current); err != nil {
			return err
		}
		if err := current.Validate(); err != nil {
			return err
		}
		if err := st.Trips.Update(ctx, current); err != nil {
			return err
		}
		trip = current
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "update", "failed to update trip", err)
	}

	s.log(ctx).Info("trip updated", slog.Int64("trip_id", id))
	return trip, nil
}

func (s *tripService) Delete(ctx context.Context, id int64) error {
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Trips.Delete(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete", "failed to delete trip", err)
	}

	s.log(ctx).Info("trip deleted", slog.Int64("trip_id", id))
	return nil
}
