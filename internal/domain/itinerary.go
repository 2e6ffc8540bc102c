package domain

// Itinerary is a tour booked for a user. Trips and lodgings hang off it.
type Itinerary struct {
	ID        int64  `db:"id"         json:"id"`
	TourName  string `db:"tour_name"  json:"tour_name"`
	DateStart Date   `db:"date_start" json:"date_start"`
	DateEnd   Date   `db:"date_end"   json:"date_end"`
	UserID    int64  `db:"user_id"    json:"user_id"`
}

// Validate checks if the Itinerary has valid data.
func (i *Itinerary) Validate() error {
	return firstError(
		requireText("tour_name", i.TourName, 100),
		checkDateRange(i.DateStart, i.DateEnd),
		requireID("user_id", i.UserID),
	)
}

// ItineraryDetail is an itinerary with its trips and lodgings loaded.
type ItineraryDetail struct {
	Itinerary
	Trips    []Trip    `json:"trips"`
	Lodgings []Lodging `json:"lodgings"`
}

// ItineraryPatch lists the itinerary fields an update may change.
// Dates are raw strings so that format errors surface as ErrInvalidDateFormat.
type ItineraryPatch struct {
	TourName  *string `json:"tour_name"`
	DateStart *string `json:"date_start"`
	DateEnd   *string `json:"date_end"`
	UserID    *int64  `json:"user_id"`
}

// Apply merges the present fields into i.
func (p ItineraryPatch) Apply(i *Itinerary) error {
	if err := applyDate("date_start", p.DateStart, &i.DateStart); err != nil {
		return err
	}
	if err := applyDate("date_end", p.DateEnd, &i.DateEnd); err != nil {
		return err
	}
	applyString(p.TourName, &i.TourName)
	applyInt64(p.UserID, &i.UserID)
	return nil
}
