package service

import (
	"context"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// fakeSessions runs every session against the same mock stores and records
// which kind of session was opened.
type fakeSessions struct {
	stores     store.Stores
	writeCalls int
	readCalls  int
}

func (f *fakeSessions) InSession(ctx context.Context, fn store.SessionFn) error {
	f.writeCalls++
	return fn(ctx, f.stores)
}

func (f *fakeSessions) InReadSession(ctx context.Context, fn store.SessionFn) error {
	f.readCalls++
	return fn(ctx, f.stores)
}

type mockStores struct {
	agencies    *MockAgencyStore
	agents      *MockAgentStore
	users       *MockUserStore
	itineraries *MockItineraryStore
	trips       *MockTripStore
	lodgings    *MockLodgingStore
	sessions    *fakeSessions
}

func newMockStores() *mockStores {
	m := &mockStores{
		agencies:    &MockAgencyStore{},
		agents:      &MockAgentStore{},
		users:       &MockUserStore{},
		itineraries: &MockItineraryStore{},
		trips:       &MockTripStore{},
		lodgings:    &MockLodgingStore{},
	}
	m.sessions = &fakeSessions{stores: store.Stores{
		Agencies:    m.agencies,
		Agents:      m.agents,
		Users:       m.users,
		Itineraries: m.itineraries,
		Trips:       m.trips,
		Lodgings:    m.lodgings,
	}}
	return m
}

func (m *mockStores) assertExpectations(t mock.TestingT) {
	m.agencies.AssertExpectations(t)
	m.agents.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.itineraries.AssertExpectations(t)
	m.trips.AssertExpectations(t)
	m.lodgings.AssertExpectations(t)
}

// MockAgencyStore mocks the store.AgencyStore interface
type MockAgencyStore struct {
	mock.Mock
}

func (m *MockAgencyStore) List(
	ctx context.Context,
	filter store.AgencyFilter,
	page store.Page,
) ([]domain.Agency, int, error) {
	args := m.Called(ctx, filter, page)
	items, _ := args.Get(0).([]domain.Agency)
	return items, args.Int(1), args.Error(2)
}

func (m *MockAgencyStore) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyStore) Create(ctx context.Context, agency *domain.Agency) error {
	return m.Called(ctx, agency).Error(0)
}

func (m *MockAgencyStore) Update(ctx context.Context, agency *domain.Agency) error {
	return m.Called(ctx, agency).Error(0)
}

func (m *MockAgencyStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockAgentStore mocks the store.AgentStore interface
type MockAgentStore struct {
	mock.Mock
}

func (m *MockAgentStore) List(
	ctx context.Context,
	filter store.AgentFilter,
	page store.Page,
) ([]domain.Agent, int, error) {
	args := m.Called(ctx, filter, page)
	items, _ := args.Get(0).([]domain.Agent)
	return items, args.Int(1), args.Error(2)
}

func (m *MockAgentStore) GetByID(ctx context.Context, id int64) (*domain.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agent), args.Error(1)
}

func (m *MockAgentStore) Create(ctx context.Context, agent *domain.Agent) error {
	return m.Called(ctx, agent).Error(0)
}

func (m *MockAgentStore) Update(ctx context.Context, agent *domain.Agent) error {
	return m.Called(ctx, agent).Error(0)
}

func (m *MockAgentStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) List(
	ctx context.Context,
	filter store.UserFilter,
	page store.Page,
) ([]domain.User, int, error) {
	args := m.Called(ctx, filter, page)
	items, _ := args.Get(0).([]domain.User)
	return items, args.Int(1), args.Error(2)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockItineraryStore mocks the store.ItineraryStore interface
type MockItineraryStore struct {
	mock.Mock
}

func (m *MockItineraryStore) List(
	ctx context.Context,
	filter store.ItineraryFilter,
	page store.Page,
) ([]domain.Itinerary, int, error) {
	args := m.Called(ctx, filter, page)
	items, _ := args.Get(0).([]domain.Itinerary)
	return items, args.Int(1), args.Error(2)
}

func (m *MockItineraryStore) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Itinerary), args.Error(1)
}

func (m *MockItineraryStore) Create(ctx context.Context, itinerary *domain.Itinerary) error {
	return m.Called(ctx, itinerary).Error(0)
}

func (m *MockItineraryStore) Update(ctx context.Context, itinerary *domain.Itinerary) error {
	return m.Called(ctx, itinerary).Error(0)
}

func (m *MockItineraryStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockTripStore mocks the store.TripStore interface
type MockTripStore struct {
	mock.Mock
}

func (m *MockTripStore) List(
	ctx context.Context,
	filter store.TripFilter,
	page store.Page,
) ([]domain.Trip, int, error) {
	args := m.Called(ctx, filter, page)
	items, _ := args.Get(0).([]domain.Trip)
	return items, args.Int(1), args.Error(2)
}

func (m *MockTripStore) ListByItineraries(ctx context.Context, ids []int64) ([]domain.Trip, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]domain.Trip)
	return items, args.Error(1)
}

func (m *MockTripStore) GetByID(ctx context.Context, id int64) (*domain.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripStore) Create(ctx context.Context, trip *domain.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *MockTripStore) Update(ctx context.Context, trip *domain.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *MockTripStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockLodgingStore mocks the store.LodgingStore interface
type MockLodgingStore struct {
	mock.Mock
}

func (m *MockLodgingStore) List(
	ctx context.Context,
	filter store.LodgingFilter,
	page store.Page,
) ([]domain.Lodging, int, error) {
	args := m.Called(ctx, filter, page)
	items, _ := args.Get(0).([]domain.Lodging)
	return items, args.Int(1), args.Error(2)
}

func (m *MockLodgingStore) ListByItineraries(ctx context.Context, ids []int64) ([]domain.Lodging, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]domain.Lodging)
	return items, args.Error(1)
}

func (m *MockLodgingStore) GetByID(ctx context.Context, id int64) (*domain.Lodging, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lodging), args.Error(1)
}

func (m *MockLodgingStore) Create(ctx context.Context, lodging *domain.Lodging) error {
	return m.Called(ctx, lodging).Error(0)
}

func (m *MockLodgingStore) Update(ctx context.Context, lodging *domain.Lodging) error {
	return m.Called(ctx, lodging).Error(0)
}

func (m *MockLodgingStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
