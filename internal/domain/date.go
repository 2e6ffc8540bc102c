package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the only accepted textual date format.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day or zone.
// It marshals to and from JSON strings in DateLayout and maps to a PostgreSQL DATE.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses s in DateLayout.
// Returns a ValidationError wrapping ErrInvalidDateFormat for anything else.
func ParseDate(field, s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, NewValidationError(field, "must be a date in YYYY-MM-DD format", ErrInvalidDateFormat)
	}
	return Date{Time: t}, nil
}

// String formats the date in DateLayout.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: date must be a string", ErrInvalidDateFormat)
	}
	parsed, err := ParseDate("date", s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// scanLayouts are the textual forms a driver may return for a date column.
var scanLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
}

func (d *Date) scanString(s string) error {
	for _, layout := range scanLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t.Year(), t.Month(), t.Day())
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into Date", s)
}
