package domain

// Lodging is a stay within an itinerary.
type Lodging struct {
	ID          int64  `db:"id"           json:"id"`
	DateStart   Date   `db:"date_start"   json:"date_start"`
	DateEnd     Date   `db:"date_end"     json:"date_end"`
	Name        string `db:"name"         json:"name"`
	Address     string `db:"address"      json:"address"`
	Phone       string `db:"phone"        json:"phone"`
	RoomCount   int    `db:"room_count"   json:"room_count"`
	ItineraryID int64  `db:"itinerary_id" json:"itinerary_id"`
}

// Validate checks if the Lodging has valid data.
func (l *Lodging) Validate() error {
	if err := checkDateRange(l.DateStart, l.DateEnd); err != nil {
		return err
	}
	if l.RoomCount < 1 {
		return invalid("room_count", "must be at least 1")
	}
	return firstError(
		requireText("name", l.Name, 100),
		limitText("address", l.Address, 200),
		limitText("phone", l.Phone, 20),
		requireID("itinerary_id", l.ItineraryID),
	)
}

// LodgingPatch lists the lodging fields an update may change.
type LodgingPatch struct {
	DateStart   *string `json:"date_start"`
	DateEnd     *string `json:"date_end"`
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	RoomCount   *int    `json:"room_count"`
	ItineraryID *int64  `json:"itinerary_id"`
}

// Apply merges the present fields into l.
func (p LodgingPatch) Apply(l *Lodging) error {
	if err := applyDate("date_start", p.DateStart, &l.DateStart); err != nil {
		return err
	}
	if err := applyDate("date_end", p.DateEnd, &l.DateEnd); err != nil {
		return err
	}
	applyString(p.Name, &l.Name)
	applyString(p.Address, &l.Address)
	applyString(p.Phone, &l.Phone)
	if p.RoomCount != nil {
		l.RoomCount = *p.RoomCount
	}
	applyInt64(p.ItineraryID, &l.ItineraryID)
	return nil
}
