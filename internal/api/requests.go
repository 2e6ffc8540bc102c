package api

import (
	"github.com/phrazzld/itinerary-api/internal/domain"
)

// CreateAgencyRequest is the body of POST /api/agencies.
type CreateAgencyRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Phone   string `json:"phone"   validate:"max=20"`
	Address string `json:"address" validate:"max=200"`
	Logo    string `json:"logo"    validate:"max=200"`
}

func (req CreateAgencyRequest) toDomain() *domain.Agency {
	return &domain.Agency{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Logo:    req.Logo,
	}
}

// CreateAgentRequest is the body of POST /api/agents.
type CreateAgentRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Phone     string `json:"phone"      validate:"max=20"`
	Email     string `json:"email"      validate:"required,email,max=100"`
}

func (req CreateAgentRequest) toDomain() *domain.Agent {
	return &domain.Agent{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	}
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	AgencyID int64  `json:"agency_id" validate:"required,gt=0"`
}

func (req CreateUserRequest) toDomain() *domain.User {
	return &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		AgencyID: req.AgencyID,
	}
}

// CreateItineraryRequest is the body of POST /api/itineraries.
// Dates are YYYY-MM-DD strings.
type CreateItineraryRequest struct {
	TourName  string `json:"tour_name"  validate:"required,max=100"`
	DateStart string `json:"date_start" validate:"required"`
	DateEnd   string `json:"date_end"   validate:"required"`
	UserID    int64  `json:"user_id"    validate:"required,gt=0"`
}

func (req CreateItineraryRequest) toDomain() (*domain.Itinerary, error) {
	start, end, err := parseDateRange(req.DateStart, req.DateEnd)
	if err != nil {
		return nil, err
	}
	return &domain.Itinerary{
		TourName:  req.TourName,
		DateStart: start,
		DateEnd:   end,
		UserID:    req.UserID,
	}, nil
}

// CreateTripRequest is the body of POST /api/trips.
type CreateTripRequest struct {
	DateStart     string `json:"date_start"     validate:"required"`
	DateEnd       string `json:"date_end"       validate:"required"`
	Transporter   string `json:"transporter"    validate:"max=100"`
	Mode          string `json:"mode"           validate:"omitempty,oneof=flight train bus car ship"`
	LocationStart string `json:"location_start" validate:"required,max=100"`
	LocationEnd   string `json:"location_end"   validate:"required,max=100"`
	ItineraryID   int64  `json:"itinerary_id"   validate:"required,gt=0"`
}

func (req CreateTripRequest) toDomain() (*domain.Trip, error) {
	start, end, err := parseDateRange(req.DateStart, req.DateEnd)
	if err != nil {
		return nil, err
	}
	return &domain.Trip{
		DateStart:     start,
		DateEnd:       end,
		Transporter:   req.Transporter,
		Mode:          domain.TravelMode(req.Mode),
		LocationStart: req.LocationStart,
		LocationEnd:   req.LocationEnd,
		ItineraryID:   req.ItineraryID,
	}, nil
}

// CreateLodgingRequest is the body of POST /api/lodgings.
type CreateLodgingRequest struct {
	DateStart   string `json:"date_start"   validate:"required"`
	DateEnd     string `json:"date_end"     validate:"required"`
	Name        string `json:"name"         validate:"required,max=100"`
	Address     string `json:"address"      validate:"max=200"`
	Phone       string `json:"phone"        validate:"max=20"`
	RoomCount   *int   `json:"room_count"   validate:"required,gte=1"`
	ItineraryID int64  `json:"itinerary_id" validate:"required,gt=0"`
}

func (req CreateLodgingRequest) toDomain() (*domain.Lodging, error) {
	start, end, err := parseDateRange(req.DateStart, req.DateEnd)
	if err != nil {
		return nil, err
	}
	return &domain.Lodging{
		DateStart:   start,
		DateEnd:     end,
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		RoomCount:   *req.RoomCount,
		ItineraryID: req.ItineraryID,
	}, nil
}

func parseDateRange(start, end string) (domain.Date, domain.Date, error) {
	from, err := domain.ParseDate("date_start", start)
	if err != nil {
		return domain.Date{}, domain.Date{}, err
	}
	to, err := domain.ParseDate("date_end", end)
	if err != nil {
		return domain.Date{}, domain.Date{}, err
	}
	return from, to, nil
}
