package domain

import "strings"

// TravelMode is the means of transport for a trip.
type TravelMode string

// Possible travel modes
const (
	TravelModeFlight TravelMode = "flight"
	TravelModeTrain  TravelMode = "train"
	TravelModeBus    TravelMode = "bus"
	TravelModeCar    TravelMode = "car"
	TravelModeShip   TravelMode = "ship"
)

// TravelModes lists every valid TravelMode in display order.
var TravelModes = []TravelMode{
	TravelModeFlight,
	TravelModeTrain,
	TravelModeBus,
	TravelModeCar,
	TravelModeShip,
}

// IsValid reports whether m is one of TravelModes.
func (m TravelMode) IsValid() bool {
	switch m {
	case TravelModeFlight, TravelModeTrain, TravelModeBus, TravelModeCar, TravelModeShip:
		return true
	default:
		return false
	}
}

// travelModeList renders TravelModes for error messages.
func travelModeList() string {
	names := make([]string, len(TravelModes))
	for i, m := range TravelModes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// ErrInvalidTravelMode is the validation error for a mode outside TravelModes.
var ErrInvalidTravelMode = invalid("mode", "must be one of: "+travelModeList())

// Trip is a single leg of transport within an itinerary.
// Mode is optional; the empty value means unspecified.
type Trip struct {
	ID            int64      `db:"id"             json:"id"`
	DateStart     Date       `db:"date_start"     json:"date_start"`
	DateEnd       Date       `db:"date_end"       json:"date_end"`
	Transporter   string     `db:"transporter"    json:"transporter"`
	Mode          TravelMode `db:"mode"           json:"mode,omitempty"`
	LocationStart string     `db:"location_start" json:"location_start"`
	LocationEnd   string     `db:"location_end"   json:"location_end"`
	ItineraryID   int64      `db:"itinerary_id"   json:"itinerary_id"`
}

// Validate checks if the Trip has valid data.
func (t *Trip) Validate() error {
	if t.Mode != "" && !t.Mode.IsValid() {
		return ErrInvalidTravelMode
	}
	return firstError(
		checkDateRange(t.DateStart, t.DateEnd),
		limitText("transporter", t.Transporter, 100),
		requireText("location_start", t.LocationStart, 100),
		requireText("location_end", t.LocationEnd, 100),
		requireID("itinerary_id", t.ItineraryID),
	)
}

// TripPatch lists the trip fields an update may change.
type TripPatch struct {
	DateStart     *string `json:"date_start"`
	DateEnd       *string `json:"date_end"`
	Transporter   *string `json:"transporter"`
	Mode          *string `json:"mode"`
	LocationStart *string `json:"location_start"`
	LocationEnd   *string `json:"location_end"`
	ItineraryID   *int64  `json:"itinerary_id"`
}

// Apply merges the present fields into t.
func (p TripPatch) Apply(t *Trip) error {
	if err := applyDate("date_start", p.DateStart, &t.DateStart); err != nil {
		return err
	}
	if err := applyDate("date_end", p.DateEnd, &t.DateEnd); err != nil {
		return err
	}
	if p.Mode != nil {
		t.Mode = TravelMode(*p.Mode)
	}
	applyString(p.Transporter, &t.Transporter)
	applyString(p.LocationStart, &t.LocationStart)
	applyString(p.LocationEnd, &t.LocationEnd)
	applyInt64(p.ItineraryID, &t.ItineraryID)
	return nil
}
