package api

import (
	"context"
	"errors"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

var errNotMocked = errors.New("not mocked")

// MockAgencyService is a mock implementation of service.AgencyService for testing
type MockAgencyService struct {
	ListFn   func(ctx context.Context, filter store.AgencyFilter, page store.Page) ([]domain.Agency, int, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Agency, error)
	CreateFn func(ctx context.Context, agency *domain.Agency) error
	UpdateFn func(ctx context.Context, id int64, patch domain.AgencyPatch) (*domain.Agency, error)
	DeleteFn func(ctx context.Context, id int64) error
}

func (m *MockAgencyService) List(
	ctx context.Context,
	filter store.AgencyFilter,
	page store.Page,
) ([]domain.Agency, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page)
	}
	return nil, 0, errNotMocked
}

func (m *MockAgencyService) Get(ctx context.Context, id int64) (*domain.Agency, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockAgencyService) Create(ctx context.Context, agency *domain.Agency) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, agency)
	}
	return errNotMocked
}

func (m *MockAgencyService) Update(
	ctx context.Context,
	id int64,
	patch domain.AgencyPatch,
) (*domain.Agency, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, errNotMocked
}

func (m *MockAgencyService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errNotMocked
}

// MockAgentService is a mock implementation of service.AgentService for testing
type MockAgentService struct {
	ListFn   func(ctx context.Context, filter store.AgentFilter, page store.Page) ([]domain.Agent, int, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Agent, error)
	CreateFn func(ctx context.Context, agent *domain.Agent) error
	UpdateFn func(ctx context.Context, id int64, patch domain.AgentPatch) (*domain.Agent, error)
	DeleteFn func(ctx context.Context, id int64) error
}

func (m *MockAgentService) List(
	ctx context.Context,
	filter store.AgentFilter,
	page store.Page,
) ([]domain.Agent, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page)
	}
	return nil, 0, errNotMocked
}

func (m *MockAgentService) Get(ctx context.Context, id int64) (*domain.Agent, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockAgentService) Create(ctx context.Context, agent *domain.Agent) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, agent)
	}
	return errNotMocked
}

func (m *MockAgentService) Update(
	ctx context.Context,
	id int64,
	patch domain.AgentPatch,
) (*domain.Agent, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, errNotMocked
}

func (m *MockAgentService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errNotMocked
}

// MockUserService is a mock implementation of service.UserService for testing
type MockUserService struct {
	ListFn         func(ctx context.Context, filter store.UserFilter, page store.Page) ([]domain.User, int, error)
	ListByAgencyFn func(ctx context.Context, agencyID int64, filter store.UserFilter, page store.Page) ([]domain.User, int, error)
	GetFn          func(ctx context.Context, id int64) (*domain.User, error)
	CreateFn       func(ctx context.Context, user *domain.User) error
	UpdateFn       func(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	DeleteFn       func(ctx context.Context, id int64) error
}

func (m *MockUserService) List(
	ctx context.Context,
	filter store.UserFilter,
	page store.Page,
) ([]domain.User, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page)
	}
	return nil, 0, errNotMocked
}

func (m *MockUserService) ListByAgency(
	ctx context.Context,
	agencyID int64,
	filter store.UserFilter,
	page store.Page,
) ([]domain.User, int, error) {
	if m.ListByAgencyFn != nil {
		return m.ListByAgencyFn(ctx, agencyID, filter, page)
	}
	return nil, 0, errNotMocked
}

func (m *MockUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockUserService) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return errNotMocked
}

func (m *MockUserService) Update(
	ctx context.Context,
	id int64,
	patch domain.UserPatch,
) (*domain.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, errNotMocked
}

func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errNotMocked
}

// MockItineraryService is a mock implementation of service.ItineraryService for testing
type MockItineraryService struct {
	ListFn        func(ctx context.Context, filter store.ItineraryFilter, page store.Page) ([]domain.Itinerary, int, error)
	ListForUserFn func(ctx context.Context, userID int64, page store.Page) ([]domain.ItineraryDetail, int, error)
	GetFn         func(ctx context.Context, id int64) (*domain.Itinerary, error)
	GetDetailFn   func(ctx context.Context, id int64) (*domain.ItineraryDetail, error)
	CreateFn      func(ctx context.Context, itinerary *domain.Itinerary) error
	UpdateFn      func(ctx context.Context, id int64, patch domain.ItineraryPatch) (*domain.Itinerary, error)
	DeleteFn      func(ctx context.Context, id int64) error
}

func (m *MockItineraryService) List(
	ctx context.Context,
	filter store.ItineraryFilter,
	page store.Page,
) ([]domain.Itinerary, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page)
	}
	return nil, 0, errNotMocked
}

func (m *MockItineraryService) ListForUser(
	ctx context.Context,
	userID int64,
	page store.Page,
) ([]domain.ItineraryDetail, int, error) {
	if m.ListForUserFn != nil {
		return m.ListForUserFn(ctx, userID, page)
	}
	return nil, 0, errNotMocked
}

func (m *MockItineraryService) Get(ctx context.Context, id int64) (*domain.Itinerary, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockItineraryService) GetDetail(ctx context.Context, id int64) (*domain.ItineraryDetail, error) {
	if m.GetDetailFn != nil {
		return m.GetDetailFn(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockItineraryService) Create(ctx context.Context, itinerary *domain.Itinerary) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, itinerary)
	}
	return errNotMocked
}

func (m *MockItineraryService) Update(
	ctx context.Context,
	id int64,
	patch domain.ItineraryPatch,
) (*domain.Itinerary, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, errNotMocked
}

func (m *MockItineraryService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errNotMocked
}

// MockTripService is a mock implementation of service.TripService for testing
type MockTripService struct {
	ListFn   func(ctx context.Context, filter store.TripFilter, page store.Page) ([]domain.Trip, int, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Trip, error)
	CreateFn func(ctx context.Context, trip *domain.Trip) error
	UpdateFn func(ctx context.Context, id int64, patch domain.TripPatch) (*domain.Trip, error)
	DeleteFn func(ctx context.Context, id int64) error
}

func (m *MockTripService) List(
	ctx context.Context,
	filter store.TripFilter,
	page store.Page,
) ([]domain.Trip, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page)
	}
	return nil, 0, errNotMocked
}

func (m *MockTripService) Get(ctx context.Context, id int64) (*domain.Trip, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockTripService) Create(ctx context.Context, trip *domain.Trip) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, trip)
	}
	return errNotMocked
}

func (m *MockTripService) Update(
	ctx context.Context,
	id int64,
	patch domain.TripPatch,
) (*domain.Trip, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, errNotMocked
}

func (m *MockTripService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errNotMocked
}

// MockLodgingService is a mock implementation of service.LodgingService for testing
type MockLodgingService struct {
	ListFn   func(ctx context.Context, filter store.LodgingFilter, page store.Page) ([]domain.Lodging, int, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Lodging, error)
	CreateFn func(ctx context.Context, lodging *domain.Lodging) error
	UpdateFn func(ctx context.Context, id int64, patch domain.LodgingPatch) (*domain.Lodging, error)
	DeleteFn func(ctx context.Context, id int64) error
}

func (m *MockLodgingService) List(
	ctx context.Context,
	filter store.LodgingFilter,
	page store.Page,
) ([]domain.Lodging, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page)
	}
	return nil, 0, errNotMocked
}

func (m *MockLodgingService) Get(ctx context.Context, id int64) (*domain.Lodging, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockLodgingService) Create(ctx context.Context, lodging *domain.Lodging) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, lodging)
	}
	return errNotMocked
}

func (m *MockLodgingService) Update(
	ctx context.Context,
	id int64,
	patch domain.LodgingPatch,
) (*domain.Lodging, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, errNotMocked
}

func (m *MockLodgingService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errNotMocked
}
