package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// AgencyService provides travel agency operations.
type AgencyService interface {
	// List returns one page of agencies matching filter and the total match count.
	List(ctx context.Context, filter store.AgencyFilter, page store.Page) ([]domain.Agency, int, error)

	// Get retrieves an agency by its ID.
	Get(ctx context.Context, id int64) (*domain.Agency, error)

	// Create validates and stores a new agency, setting its ID.
	Create(ctx context.Context, agency *domain.Agency) error

	// Update applies patch to the stored agency and returns the result.
	Update(ctx context.Context, id int64, patch domain.AgencyPatch) (*domain.Agency, error)

	// Delete removes an agency together with its users and their itineraries.
	Delete(ctx context.Context, id int64) error
}

type agencyService struct {
	base
}

// NewAgencyService creates a new AgencyService
func NewAgencyService(sessions store.SessionProvider, logger *slog.Logger) AgencyService {
	return &agencyService{base: newBase("agency", sessions, logger)}
}

func (s *agencyService) List(
	ctx context.Context,
	filter store.AgencyFilter,
	page store.Page,
) ([]domain.Agency, int, error) {
	var (
		agencies []domain.Agency
		total    int
	)
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		agencies, total, err = st.Agencies.List(ctx, filter, page)
		return err
	})
	if err != nil {
		return nil, 0, s.fail(ctx, "list", "failed to list agencies", err)
	}
	return agencies, total, nil
}

func (s *agencyService) Get(ctx context.Context, id int64) (*domain.Agency, error) {
	var agency *domain.Agency
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		agency, err = st.Agencies.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "get", "failed to retrieve agency", err)
	}
	return agency, nil
}

func (s *agencyService) Create(ctx context.Context, agency *domain.Agency) error {
	if err := agency.Validate(); err != nil {
		return s.fail(ctx, "create", "agency validation failed", err)
	}
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Agencies.Create(ctx, agency)
	})
	if err != nil {
		return s.fail(ctx, "create", "failed to create agency", err)
	}

	s.log(ctx).Info("agency created", slog.Int64("agency_id", agency.ID))
	return nil
}

func (s *agencyService) Update(ctx context.Context, id int64, patch domain.AgencyPatch) (*domain.Agency, error) {
	var agency *domain.Agency
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		current, err := st.Agencies.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(current); err != nil {
			return err
		}
		if err := current.Validate(); err != nil {
			return err
		}
		if err := st.Agencies.Update(ctx, current); err != nil {
			return err
		}
		agency = current
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "update", "failed to update agency", err)
	}

	s.log(ctx).Info("agency updated", slog.Int64("agency_id", id))
	return agency, nil
}

func (s *agencyService) Delete(ctx context.Context, id int64) error {
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Agencies.Delete(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete", "failed to delete agency", err)
	}

	s.log(ctx).Info("agency deleted", slog.Int64("agency_id", id))
	return nil
}
