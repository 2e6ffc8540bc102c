package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// ItineraryService provides itinerary operations, including the detail views
// that load trips and lodgings together with their itinerary.
type ItineraryService interface {
	List(ctx context.Context, filter store.ItineraryFilter, page store.Page) ([]domain.Itinerary, int, error)

	// ListForUser returns one page of a user's itineraries ordered by start
	// date, each with its trips and lodgings. Returns store.ErrUserNotFound if
	// the user does not exist.
	ListForUser(ctx context.Context, userID int64, page store.Page) ([]domain.ItineraryDetail, int, error)

	Get(ctx context.Context, id int64) (*domain.Itinerary, error)

	// GetDetail retrieves an itinerary with its trips and lodgings.
	GetDetail(ctx context.Context, id int64) (*domain.ItineraryDetail, error)

	// Create returns a validation error on user_id when the user does not exist.
	Create(ctx context.Context, itinerary *domain.Itinerary) error

	Update(ctx context.Context, id int64, patch domain.ItineraryPatch) (*domain.Itinerary, error)

	// Delete removes an itinerary with its trips and lodgings.
	Delete(ctx context.Context, id int64) error
}

type itineraryService struct {
	base
}

// NewItineraryService creates a new ItineraryService
func NewItineraryService(sessions store.SessionProvider, logger *slog.Logger) ItineraryService {
	return &itineraryService{base: newBase("itinerary", sessions, logger)}
}

func (s *itineraryService) List(
	ctx context.Context,
	filter store.ItineraryFilter,
	page store.Page,
) ([]domain.Itinerary, int, error) {
	var (
		itineraries []domain.Itinerary
		total       int
	)
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		itineraries, total, err = st.Itineraries.List(ctx, filter, page)
		return err
	})
	if err != nil {
		return nil, 0, s.fail(ctx, "list", "failed to list itineraries", err)
	}
	return itineraries, total, nil
}

func (s *itineraryService) ListForUser(
	ctx context.Context,
	userID int64,
	page store.Page,
) ([]domain.ItineraryDetail, int, error) {
	var (
		details []domain.ItineraryDetail
		total   int
	)
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		if _, err := st.Users.GetByID(ctx, userID); err != nil {
			return err
		}
		itineraries, n, err := st.Itineraries.List(ctx, store.ItineraryFilter{UserID: &userID}, page)
		if err != nil {
			return err
		}
		details, err = loadDetails(ctx, st, itineraries)
		total = n
		return err
	})
	if err != nil {
		return nil, 0, s.fail(ctx, "list_for_user", "failed to list user itineraries", err)
	}
	return details, total, nil
}

func (s *itineraryService) Get(ctx context.Context, id int64) (*domain.Itinerary, error) {
	var itinerary *domain.Itinerary
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		itinerary, err = st.Itineraries.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "get", "failed to retrieve itinerary", err)
	}
	return itinerary, nil
}

func (s *itineraryService) GetDetail(ctx context.Context, id int64) (*domain.ItineraryDetail, error) {
	var detail domain.ItineraryDetail
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		itinerary, err := st.Itineraries.GetByID(ctx, id)
		if err != nil {
			return err
		}
		details, err := loadDetails(ctx, st, []domain.Itinerary{*itinerary})
		if err != nil {
			return err
		}
		detail = details[0]
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "get_detail", "failed to retrieve itinerary detail", err)
	}
	return &detail, nil
}

// loadDetails eagerly loads the trips and lodgings of itineraries with one
// query per child table, preserving the order of itineraries.
func loadDetails(
	ctx context.Context,
	st store.Stores,
	itineraries []domain.Itinerary,
) ([]domain.ItineraryDetail, error) {
	details := make([]domain.ItineraryDetail, len(itineraries))
	if len(itineraries) == 0 {
		return details, nil
	}

	ids := make([]int64, len(itineraries))
	index := make(map[int64]int, len(itineraries))
	for i, it := range itineraries {
		ids[i] = it.ID
		index[it.ID] = i
		details[i] = domain.ItineraryDetail{
			Itinerary: it,
			Trips:     []domain.Trip{},
			Lodgings:  []domain.Lodging{},
		}
	}

	trips, err := st.Trips.ListByItineraries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range trips {
		if i, ok := index[t.ItineraryID]; ok {
			details[i].Trips = append(details[i].Trips, t)
		}
	}

	lodgings, err := st.Lodgings.ListByItineraries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, l := range lodgings {
		if i, ok := index[l.ItineraryID]; ok {
			details[i].Lodgings = append(details[i].Lodgings, l)
		}
	}

	return details, nil
}

func (s *itineraryService) Create(ctx context.Context, itinerary *domain.Itinerary) error {
	if err := itinerary.Validate(); err != nil {
		return s.fail(ctx, "create", "itinerary validation failed", err)
	}
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Itineraries.Create(ctx, itinerary)
	})
	if err != nil {
		return s.fail(ctx, "create", "failed to create itinerary", err)
	}

	s.log(ctx).Info("itinerary created",
		slog.Int64("itinerary_id", itinerary.ID),
		slog.Int64("user_id", itinerary.UserID))
	return nil
}

func (s *itineraryService) Update(
	ctx context.Context,
	id int64,
	patch domain.ItineraryPatch,
) (*domain.Itinerary, error) {
	var itinerary *domain.Itinerary
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		current, err := st.Itineraries.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(current); err != nil {
			return err
		}
		if err := current.Validate(); err != nil {
			return err
		}
		if err := st.Itineraries.Update(ctx, current); err != nil {
			return err
		}
		itinerary = current
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "update", "failed to update itinerary", err)
	}

	s.log(ctx).Info("itinerary updated", slog.Int64("itinerary_id", id))
	return itinerary, nil
}

func (s *itineraryService) Delete(ctx context.Context, id int64) error {
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Itineraries.Delete(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete", "failed to delete itinerary", err)
	}

	s.log(ctx).Info("itinerary deleted", slog.Int64("itinerary_id", id))
	return nil
}
