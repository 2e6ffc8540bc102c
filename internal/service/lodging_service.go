package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// LodgingService provides lodging operations.
type LodgingService interface {
	List(ctx context.Context, filter store.LodgingFilter, page store.Page) ([]domain.Lodging, int, error)
	Get(ctx context.Context, id int64) (*domain.Lodging, error)
	// Create rejects lodgings with fewer than one room; nothing is stored.
	Create(ctx context.Context, lodging *domain.Lodging) error
	Update(ctx context.Context, id int64, patch domain.LodgingPatch) (*domain.Lodging, error)
	Delete(ctx context.Context, id int64) error
}

type lodgingService struct {
	base
}

// NewLodgingService creates a new LodgingService
func NewLodgingService(sessions store.SessionProvider, logger *slog.Logger) LodgingService {
	return &lodgingService{base: newBase("lodging", sessions, logger)}
}

func (s *lodgingService) List(
	ctx context.Context,
	filter store.LodgingFilter,
	page store.Page,
) ([]domain.Lodging, int, error) {
	var (
		lodgings []domain.Lodging
		total    int
	)
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		lodgings, total, err = st.Lodgings.List(ctx, filter, page)
		return err
	})
	if err != nil {
		return nil, 0, s.fail(ctx, "list", "failed to list lodgings", err)
	}
	return lodgings, total, nil
}

func (s *lodgingService) Get(ctx context.Context, id int64) (*domain.Lodging, error) {
	var lodging *domain.Lodging
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		lodging, err = st.Lodgings.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "get", "failed to retrieve lodging", err)
	}
	return lodging, nil
}

func (s *lodgingService) Create(ctx context.Context, lodging *domain.Lodging) error {
	if err := lodging.Validate(); err != nil {
		return s.fail(ctx, "create", "lodging validation failed", err)
	}
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Lodgings.Create(ctx, lodging)
	})
	if err != nil {
		return s.fail(ctx, "create", "failed to create lodging", err)
	}

	s.log(ctx).Info("lodging created",
		slog.Int64("lodging_id", lodging.ID),
		slog.Int64("itinerary_id", lodging.ItineraryID))
	return nil
}

func (s *lodgingService) Update(
	ctx context.Context,
	id int64,
	patch domain.LodgingPatch,
) (*domain.Lodging, error) {
	var lodging *domain.Lodging
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		current, err := st.Lodgings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(current); err != nil {
			return err
		}
		if err := current.Validate(); err != nil {
			return err
		}
		if err := st.Lodgings.Update(ctx, current); err != nil {
			return err
		}
		lodging = current
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "update", "failed to update lodging", err)
	}

	s.log(ctx).Info("lodging updated", slog.Int64("lodging_id", id))
	return lodging, nil
}

func (s *lodgingService) Delete(ctx context.Context, id int64) error {
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Lodgings.Delete(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete", "failed to delete lodging", err)
	}

	s.log(ctx).Info("lodging deleted", slog.Int64("lodging_id", id))
	return nil
}
