package store

import (
	"math"

	"github.com/phrazzld/itinerary-api/internal/domain"
)

// Page selects one window of a list result. Number is 1-based.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows preceding the page. It saturates at
// math.MaxInt instead of overflowing.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// HasNext reports whether rows remain after this page out of total.
func (p Page) HasNext(total int) bool {
	if total < 1 || p.Size < 1 {
		return false
	}
	return p.Number-1 < (total-1)/p.Size
}

// AgencyFilter narrows an agency listing. Empty fields do not filter.
type AgencyFilter struct {
	Name string
}

// AgentFilter narrows an agent listing. Empty fields do not filter.
type AgentFilter struct {
	Name  string // matches first or last name
	Email string
}

// UserFilter narrows a user listing.
type UserFilter struct {
	Name     string
	Email    string
	AgencyID *int64
}

// ItineraryFilter narrows an itinerary listing.
type ItineraryFilter struct {
	TourName  string
	StartDate *domain.Date // date_start on or after
	UserID    *int64
}

// TripFilter narrows a trip listing.
type TripFilter struct {
	Mode        string
	Transporter string
	Location    string // matches start or end location
	StartDate   *domain.Date
	ItineraryID *int64
}

// LodgingFilter narrows a lodging listing.
type LodgingFilter struct {
	Name        string
	StartDate   *domain.Date
	MinRooms    *int
	ItineraryID *int64
}
