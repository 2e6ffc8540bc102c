package store

import (
	"context"

	"github.com/phrazzld/itinerary-api/internal/domain"
)

// AgencyStore defines the interface for travel agency data persistence.
//
// List returns the requested page together with the total number of rows
// matching the filter. Create sets the generated ID on the given entity.
// GetByID, Update and Delete return ErrAgencyNotFound for unknown IDs.
// Deleting an agency also deletes its users and, transitively, their itineraries.
type AgencyStore interface {
	List(ctx context.Context, filter AgencyFilter, page Page) ([]domain.Agency, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Agency, error)
	Create(ctx context.Context, agency *domain.Agency) error
	Update(ctx context.Context, agency *domain.Agency) error
	Delete(ctx context.Context, id int64) error
}

// AgentStore defines the interface for travel agent data persistence.
// Create and Update return ErrEmailExists when the email is already in use.
type AgentStore interface {
	List(ctx context.Context, filter AgentFilter, page Page) ([]domain.Agent, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Agent, error)
	Create(ctx context.Context, agent *domain.Agent) error
	Update(ctx context.Context, agent *domain.Agent) error
	Delete(ctx context.Context, id int64) error
}

// UserStore defines the interface for user data persistence.
// Create and Update return ErrEmailExists when the email is already in use,
// and a domain validation error on agency_id when the agency does not exist.
type UserStore interface {
	List(ctx context.Context, filter UserFilter, page Page) ([]domain.User, int, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// ItineraryStore defines the interface for itinerary data persistence.
// Deleting an itinerary deletes its trips and lodgings.
type ItineraryStore interface {
	List(ctx context.Context, filter ItineraryFilter, page Page) ([]domain.Itinerary, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Itinerary, error)
	Create(ctx context.Context, itinerary *domain.Itinerary) error
	Update(ctx context.Context, itinerary *domain.Itinerary) error
	Delete(ctx context.Context, id int64) error
}

// TripStore defines the interface for trip data persistence.
type TripStore interface {
	List(ctx context.Context, filter TripFilter, page Page) ([]domain.Trip, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Trip, error)
	Create(ctx context.Context, trip *domain.Trip) error
	Update(ctx context.Context, trip *domain.Trip) error
	Delete(ctx context.Context, id int64) error

	// ListByItineraries returns every trip belonging to the given itineraries,
	// ordered by itinerary then date_start.
	ListByItineraries(ctx context.Context, itineraryIDs []int64) ([]domain.Trip, error)
}

// LodgingStore defines the interface for lodging data persistence.
type LodgingStore interface {
	List(ctx context.Context, filter LodgingFilter, page Page) ([]domain.Lodging, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Lodging, error)
	Create(ctx context.Context, lodging *domain.Lodging) error
	Update(ctx context.Context, lodging *domain.Lodging) error
	Delete(ctx context.Context, id int64) error

	// ListByItineraries returns every lodging belonging to the given itineraries,
	// ordered by itinerary then date_start.
	ListByItineraries(ctx context.Context, itineraryIDs []int64) ([]domain.Lodging, error)
}

// Stores bundles the entity stores bound to one database session.
type Stores struct {
	Agencies    AgencyStore
	Agents      AgentStore
	Users       UserStore
	Itineraries ItineraryStore
	Trips       TripStore
	Lodgings    LodgingStore
}

// SessionFn runs against stores that share one transaction.
type SessionFn func(ctx context.Context, s Stores) error

// SessionProvider hands out Stores bound to a transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type SessionProvider interface {
	// InSession runs fn in a read-write transaction.
	InSession(ctx context.Context, fn SessionFn) error
	// InReadSession runs fn in a read-only transaction so that all reads
	// observe one snapshot.
	InReadSession(ctx context.Context, fn SessionFn) error
}
