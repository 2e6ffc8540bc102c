package api

import (
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/phrazzld/itinerary-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListEnvelopeLinks(t *testing.T) {
	tests := []struct {
		name     string
		page     store.Page
		total    int
		wantNext bool
		wantPrev bool
	}{
		{name: "first of several", page: store.Page{Number: 1, Size: 1}, total: 3, wantNext: true},
		{name: "middle page", page: store.Page{Number: 2, Size: 1}, total: 3, wantNext: true, wantPrev: true},
		{name: "last page", page: store.Page{Number: 3, Size: 1}, total: 3, wantPrev: true},
		{name: "exact fit", page: store.Page{Number: 1, Size: 10}, total: 10},
		{name: "past the end", page: store.Page{Number: 5, Size: 10}, total: 3, wantPrev: true},
		{name: "empty collection", page: store.Page{Number: 1, Size: 10}, total: 0},
		{name: "huge page number", page: store.Page{Number: math.MaxInt/5 + 2, Size: 10}, total: 10, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/trips?mode=train", nil)

			env := newListEnvelope(req, []int{}, tt.page, tt.total)

			assert.Equal(t, Meta{Page: tt.page.Number, PerPage: tt.page.Size, Total: tt.total}, env.Meta)
			assert.Contains(t, env.Links, "self")
			_, hasNext := env.Links["next"]
			_, hasPrev := env.Links["prev"]
			assert.Equal(t, tt.wantNext, hasNext, "next link")
			assert.Equal(t, tt.wantPrev, hasPrev, "prev link")
		})
	}
}

func TestNewListEnvelopeKeepsFilters(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/trips/?mode=train&page=2&per_page=1&location=paris", nil)

	env := newListEnvelope(req, []int{}, store.Page{Number: 2, Size: 1}, 3)

	next, err := url.Parse(env.Links["next"])
	require.NoError(t, err)
	assert.Equal(t, "/api/trips", next.Path)
	assert.Equal(t, "3", next.Query().Get("page"))
	assert.Equal(t, "1", next.Query().Get("per_page"))
	assert.Equal(t, "train", next.Query().Get("mode"))
	assert.Equal(t, "paris", next.Query().Get("location"))

	prev, err := url.Parse(env.Links["prev"])
	require.NoError(t, err)
	assert.Equal(t, "1", prev.Query().Get("page"))

	self, err := url.Parse(env.Links["self"])
	require.NoError(t, err)
	assert.Equal(t, "2", self.Query().Get("page"))
}

func TestNewResourceEnvelope(t *testing.T) {
	env := newResourceEnvelope(map[string]int{"id": 7}, "itineraries", 7, itineraryLinks(7, 3))

	assert.Equal(t, Links{
		"self":       "/api/itineraries/7",
		"collection": "/api/itineraries",
		"user":       "/api/users/3",
		"trips":      "/api/trips?itinerary_id=7",
		"lodgings":   "/api/lodgings?itinerary_id=7",
		"details":    "/api/itineraries/7/details",
	}, env.Links)
}
