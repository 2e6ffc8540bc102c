package api

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// invalidParam builds the InvalidParameter error for a query or path parameter.
func invalidParam(name, message string) error {
	return domain.NewValidationError(name, message, domain.ErrInvalidParameter)
}

// pathID extracts a positive integer id from the URL path parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, invalidParam(name, "must be a positive integer")
	}
	return id, nil
}

// parsePage reads page and per_page. Absent values take the defaults;
// anything below one or above the configured maximum is rejected.
func parsePage(q url.Values, cfg config.PaginationConfig) (store.Page, error) {
	page := store.Page{Number: 1, Size: cfg.DefaultPerPage}

	if raw := strings.TrimSpace(q.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return store.Page{}, invalidParam("page", "must be a positive integer")
		}
		page.Number = n
	}

	if raw := strings.TrimSpace(q.Get("per_page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return store.Page{}, invalidParam("per_page", "must be a positive integer")
		}
		if n > cfg.MaxPerPage {
			return store.Page{}, invalidParam("per_page", "must be at most "+strconv.Itoa(cfg.MaxPerPage))
		}
		page.Size = n
	}

	if page.Number-1 > math.MaxInt/page.Size {
		return store.Page{}, invalidParam("page", "is too large")
	}

	return page, nil
}

// queryParser reads optional filter parameters, keeping the first error.
// An empty value means the filter is absent.
type queryParser struct {
	q   url.Values
	err error
}

func (p *queryParser) text(name string) string {
	return strings.TrimSpace(p.q.Get(name))
}

func (p *queryParser) id(name string) *int64 {
	raw := p.text(name)
	if raw == "" || p.err != nil {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.err = invalidParam(name, "must be an integer")
		return nil
	}
	return &n
}

func (p *queryParser) count(name string) *int {
	n := p.id(name)
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

func (p *queryParser) date(name string) *domain.Date {
	raw := p.text(name)
	if raw == "" || p.err != nil {
		return nil
	}
	d, err := domain.ParseDate(name, raw)
	if err != nil {
		p.err = err
		return nil
	}
	return &d
}

func (p *queryParser) mode(name string) string {
	raw := p.text(name)
	if raw == "" || p.err != nil {
		return ""
	}
	if !domain.TravelMode(raw).IsValid() {
		p.err = invalidParam(name, "is not a known travel mode")
		return ""
	}
	return raw
}

func parseAgencyFilter(q url.Values) (store.AgencyFilter, error) {
	p := &queryParser{q: q}
	return store.AgencyFilter{Name: p.text("name")}, p.err
}

func parseAgentFilter(q url.Values) (store.AgentFilter, error) {
	p := &queryParser{q: q}
	return store.AgentFilter{Name: p.text("name"), Email: p.text("email")}, p.err
}

func parseUserFilter(q url.Values) (store.UserFilter, error) {
	p := &queryParser{q: q}
	f := store.UserFilter{
		Name:     p.text("name"),
		Email:    p.text("email"),
		AgencyID: p.id("agency_id"),
	}
	return f, p.err
}

func parseItineraryFilter(q url.Values) (store.ItineraryFilter, error) {
	p := &queryParser{q: q}
	f := store.ItineraryFilter{
		TourName:  p.text("tour_name"),
		StartDate: p.date("start_date"),
		UserID:    p.id("user_id"),
	}
	return f, p.err
}

func parseTripFilter(q url.Values) (store.TripFilter, error) {
	p := &queryParser{q: q}
	f := store.TripFilter{
		Mode:        p.mode("mode"),
		Transporter: p.text("transporter"),
		StartDate:   p.date("start_date"),
		Location:    p.text("location"),
		ItineraryID: p.id("itinerary_id"),
	}
	return f, p.err
}

func parseLodgingFilter(q url.Values) (store.LodgingFilter, error) {
	p := &queryParser{q: q}
	f := store.LodgingFilter{
		Name:        p.text("name"),
		StartDate:   p.date("start_date"),
		MinRooms:    p.count("min_rooms"),
		ItineraryID: p.id("itinerary_id"),
	}
	return f, p.err
}
