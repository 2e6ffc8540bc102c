package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/service"
	"github.com/phrazzld/itinerary-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripHandlerList(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantKind  string
		wantField string
		want      store.TripFilter
	}{
		{
			name:     "filters",
			query:    "?mode=flight&start_date=2024-06-01&itinerary_id=7",
			wantCode: http.StatusOK,
			want: store.TripFilter{
				Mode:        "flight",
				StartDate:   datePtr(domain.NewDate(2024, time.June, 1)),
				ItineraryID: int64Ptr(7),
			},
		},
		{
			name:      "unknown mode",
			query:     "?mode=zeppelin",
			wantCode:  http.StatusBadRequest,
			wantKind:  KindInvalidParameter,
			wantField: "mode",
		},
		{
			name:      "bad start date",
			query:     "?start_date=2024-6-1",
			wantCode:  http.StatusBadRequest,
			wantKind:  KindInvalidDateFormat,
			wantField: "start_date",
		},
		{
			name:      "per page above maximum",
			query:     "?per_page=101",
			wantCode:  http.StatusBadRequest,
			wantKind:  KindInvalidParameter,
			wantField: "per_page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAPI()
			var got store.TripFilter
			called := false
			a.trips.ListFn = func(ctx context.Context, f store.TripFilter, p store.Page) ([]domain.Trip, int, error) {
				got, called = f, true
				return []domain.Trip{}, 0, nil
			}

			rec := a.do(http.MethodGet, "/api/trips"+tt.query, "")

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.want, got)
				return
			}
			assert.False(t, called)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.Equal(t, tt.wantField, body.Field)
		})
	}
}

func TestTripHandlerCreate(t *testing.T) {
	const valid = `{"date_start":"2024-06-01","date_end":"2024-06-01","mode":"train",` +
		`"transporter":"Eurostar","location_start":"London","location_end":"Paris","itinerary_id":7}`

	t.Run("created", func(t *testing.T) {
		a := newTestAPI()
		var created domain.Trip
		a.trips.CreateFn = func(ctx context.Context, trip *domain.Trip) error {
			trip.ID = 1
			created = *trip
			return nil
		}

		rec := a.do(http.MethodPost, "/api/trips", valid)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, domain.TravelModeTrain, created.Mode)
		assert.Equal(t, "Eurostar", created.Transporter)
		body := decodeJSON[resourceBody[domain.Trip]](t, rec)
		assert.Equal(t, "/api/itineraries/7", body.Links["itinerary"])
	})

	t.Run("mode is optional", func(t *testing.T) {
		a := newTestAPI()
		a.trips.CreateFn = func(ctx context.Context, trip *domain.Trip) error {
			trip.ID = 2
			return nil
		}

		rec := a.do(http.MethodPost, "/api/trips",
			`{"date_start":"2024-06-01","date_end":"2024-06-02","location_start":"Paris","location_end":"Nice","itinerary_id":7}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), `"mode"`)
	})

	t.Run("unknown mode", func(t *testing.T) {
		a := newTestAPI()

		rec := a.do(http.MethodPost, "/api/trips",
			`{"date_start":"2024-06-01","date_end":"2024-06-01","mode":"rocket","location_start":"A","location_end":"B","itinerary_id":7}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, KindInvalidValue, body.Kind)
		assert.Equal(t, "mode", body.Field)
	})

	t.Run("end before start", func(t *testing.T) {
		a := newTestAPI()
		a.trips.CreateFn = func(ctx context.Context, trip *domain.Trip) error {
			return trip.Validate()
		}

		rec := a.do(http.MethodPost, "/api/trips",
			`{"date_start":"2024-06-05","date_end":"2024-06-01","location_start":"A","location_end":"B","itinerary_id":7}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, KindInvalidValue, body.Kind)
		assert.Equal(t, "date_start", body.Field)
	})

	t.Run("missing itinerary", func(t *testing.T) {
		a := newTestAPI()
		a.trips.CreateFn = func(ctx context.Context, trip *domain.Trip) error {
			return service.NewServiceError("trip", "create", "failed to create trip",
				domain.NewValidationError("itinerary_id", "does not reference an existing itinerary", domain.ErrInvalidValue))
		}

		rec := a.do(http.MethodPost, "/api/trips", valid)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "itinerary_id", decodeError(t, rec).Field)
	})
}

func TestTripHandlerGetUpdateDelete(t *testing.T) {
	a := newTestAPI()
	trip := domain.Trip{
		ID: 1, DateStart: domain.NewDate(2024, time.June, 1), DateEnd: domain.NewDate(2024, time.June, 1),
		LocationStart: "London", LocationEnd: "Paris", ItineraryID: 7,
	}
	a.trips.GetFn = func(ctx context.Context, id int64) (*domain.Trip, error) {
		if id != trip.ID {
			return nil, store.ErrTripNotFound
		}
		return &trip, nil
	}
	a.trips.UpdateFn = func(ctx context.Context, id int64, p domain.TripPatch) (*domain.Trip, error) {
		updated := trip
		if err := p.Apply(&updated); err != nil {
			return nil, err
		}
		return &updated, updated.Validate()
	}
	a.trips.DeleteFn = func(ctx context.Context, id int64) error { return nil }

	rec := a.do(http.MethodGet, "/api/trips/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Paris", decodeJSON[resourceBody[domain.Trip]](t, rec).Data.LocationEnd)

	rec = a.do(http.MethodGet, "/api/trips/2", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Trip not found", decodeError(t, rec).Error)

	rec = a.do(http.MethodPatch, "/api/trips/1", `{"mode":"ship"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.TravelModeShip, decodeJSON[resourceBody[domain.Trip]](t, rec).Data.Mode)

	rec = a.do(http.MethodPatch, "/api/trips/1", `{"mode":"rocket"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "mode", decodeError(t, rec).Field)

	rec = a.do(http.MethodDelete, "/api/trips/1/", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLodgingHandlerCreate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantKind  string
		wantField string
	}{
		{
			name:     "created",
			body:     `{"date_start":"2024-06-01","date_end":"2024-06-07","name":"Hotel Lumiere","room_count":2,"itinerary_id":7}`,
			wantCode: http.StatusCreated,
		},
		{
			name:      "zero rooms",
			body:      `{"date_start":"2024-06-01","date_end":"2024-06-07","name":"Hotel Lumiere","room_count":0,"itinerary_id":7}`,
			wantCode:  http.StatusBadRequest,
			wantKind:  KindInvalidValue,
			wantField: "room_count",
		},
		{
			name:      "missing room count",
			body:      `{"date_start":"2024-06-01","date_end":"2024-06-07","name":"Hotel Lumiere","itinerary_id":7}`,
			wantCode:  http.StatusBadRequest,
			wantKind:  KindMissingField,
			wantField: "room_count",
		},
		{
			name:      "missing name",
			body:      `{"date_start":"2024-06-01","date_end":"2024-06-07","room_count":2,"itinerary_id":7}`,
			wantCode:  http.StatusBadRequest,
			wantKind:  KindMissingField,
			wantField: "name",
		},
		{
			name:      "bad date",
			body:      `{"date_start":"2024-06-01","date_end":"June 7","name":"Hotel Lumiere","room_count":2,"itinerary_id":7}`,
			wantCode:  http.StatusBadRequest,
			wantKind:  KindInvalidDateFormat,
			wantField: "date_end",
		},
		{
			name:     "two documents",
			body:     `{"date_start":"2024-06-01","date_end":"2024-06-07","name":"Hotel Lumiere","room_count":2,"itinerary_id":7}{}`,
			wantCode: http.StatusBadRequest,
			wantKind: KindInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAPI()
			called := false
			a.lodgings.CreateFn = func(ctx context.Context, l *domain.Lodging) error {
				called = true
				l.ID = 2
				return nil
			}

			rec := a.do(http.MethodPost, "/api/lodgings", tt.body)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode == http.StatusCreated {
				assert.True(t, called)
				body := decodeJSON[resourceBody[domain.Lodging]](t, rec)
				assert.Equal(t, 2, body.Data.RoomCount)
				assert.Equal(t, "/api/lodgings/2", rec.Header().Get("Location"))
				return
			}
			assert.False(t, called, "service must not be called")
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantKind, body.Kind)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, body.Field)
			}
		})
	}
}

func TestLodgingHandlerList(t *testing.T) {
	a := newTestAPI()
	var got store.LodgingFilter
	a.lodgings.ListFn = func(ctx context.Context, f store.LodgingFilter, p store.Page) ([]domain.Lodging, int, error) {
		got = f
		return []domain.Lodging{{ID: 2, Name: "Hotel Lumiere", RoomCount: 3, ItineraryID: 7}}, 1, nil
	}

	rec := a.do(http.MethodGet, "/api/lodgings?name=lumiere&min_rooms=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lumiere", got.Name)
	require.NotNil(t, got.MinRooms)
	assert.Equal(t, 2, *got.MinRooms)
	body := decodeJSON[listBody[domain.Lodging]](t, rec)
	assert.Equal(t, Meta{Page: 1, PerPage: 10, Total: 1}, body.Meta)
}
