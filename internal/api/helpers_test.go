package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

// testAPI serves the full route tree over mock services.
type testAPI struct {
	agencies    *MockAgencyService
	agents      *MockAgentService
	users       *MockUserService
	itineraries *MockItineraryService
	trips       *MockTripService
	lodgings    *MockLodgingService
	router      http.Handler
}

func newTestAPI() *testAPI {
	a := &testAPI{
		agencies:    &MockAgencyService{},
		agents:      &MockAgentService{},
		users:       &MockUserService{},
		itineraries: &MockItineraryService{},
		trips:       &MockTripService{},
		lodgings:    &MockLodgingService{},
	}
	handlers := NewHandlers(Services{
		Agencies:    a.agencies,
		Agents:      a.agents,
		Users:       a.users,
		Itineraries: a.itineraries,
		Trips:       a.trips,
		Lodgings:    a.lodgings,
	}, testPagination, nil)

	r := chi.NewRouter()
	r.Use(chimw.StripSlashes)
	r.Route(BasePath, handlers.Routes)
	a.router = r
	return a
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Field string `json:"field"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

type listBody[T any] struct {
	Data  []T   `json:"data"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

type resourceBody[T any] struct {
	Data  T     `json:"data"`
	Links Links `json:"links"`
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// withURLParams attaches chi URL parameters to r for handlers called directly.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
