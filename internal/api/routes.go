package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/service"
)

// Services bundles the services the HTTP layer is built on.
type Services struct {
	Agencies    service.AgencyService
	Agents      service.AgentService
	Users       service.UserService
	Itineraries service.ItineraryService
	Trips       service.TripService
	Lodgings    service.LodgingService
}

// Handlers holds one handler per resource.
type Handlers struct {
	Agencies    *AgencyHandler
	Agents      *AgentHandler
	Users       *UserHandler
	Itineraries *ItineraryHandler
	Trips       *TripHandler
	Lodgings    *LodgingHandler
}

// NewHandlers creates the handlers for every resource.
func NewHandlers(s Services, pagination config.PaginationConfig, logger *slog.Logger) *Handlers {
	return &Handlers{
		Agencies:    NewAgencyHandler(s.Agencies, pagination, logger),
		Agents:      NewAgentHandler(s.Agents, pagination, logger),
		Users:       NewUserHandler(s.Users, pagination, logger),
		Itineraries: NewItineraryHandler(s.Itineraries, pagination, logger),
		Trips:       NewTripHandler(s.Trips, pagination, logger),
		Lodgings:    NewLodgingHandler(s.Lodgings, pagination, logger),
	}
}

// crud is the handler set every resource exposes.
type crud interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// resource registers the standard routes of h under pattern. member adds
// extra routes below /{id}.
func resource(r chi.Router, pattern string, h crud, member func(chi.Router)) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Update)
			r.Patch("/", h.Update)
			r.Delete("/", h.Delete)
			if member != nil {
				member(r)
			}
		})
	})
}

// Routes registers every resource route on r. Mount it under BasePath.
func (h *Handlers) Routes(r chi.Router) {
	resource(r, "/agencies", h.Agencies, func(r chi.Router) {
		r.Get("/users", h.Users.ListByAgency)
	})
	resource(r, "/agents", h.Agents, nil)
	resource(r, "/users", h.Users, func(r chi.Router) {
		r.Get("/itineraries", h.Itineraries.ListForUser)
	})
	resource(r, "/itineraries", h.Itineraries, func(r chi.Router) {
		r.Get("/details", h.Itineraries.GetDetail)
	})
	resource(r, "/trips", h.Trips, nil)
	resource(r, "/lodgings", h.Lodgings, nil)
}
