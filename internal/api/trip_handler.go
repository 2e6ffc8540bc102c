package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/itinerary-api/internal/api/shared"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/service"
)

// TripHandler handles trip-related HTTP requests
type TripHandler struct {
	handler
	trips service.TripService
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(
	trips service.TripService,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) *TripHandler {
	if trips == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("trip service cannot be nil for TripHandler")
	}
	return &TripHandler{
		handler: newHandler("trip_handler", pagination, logger),
		trips:   trips,
	}
}

func tripEnvelope(t *domain.Trip) ResourceEnvelope {
	return newResourceEnvelope(t, "trips", t.ID, Links{
		"itinerary": resourcePath("itineraries", t.ItineraryID),
	})
}

// List handles GET /api/trips
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	filter, err := parseTripFilter(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	trips, total, err := h.trips.List(r.Context(), filter, page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListEnvelope(r, trips, page, total))
}

// Get handles GET /api/trips/{id}
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	trip, err := h.trips.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tripEnvelope(trip))
}

// Create handles POST /api/trips
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	trip, err := req.toDomain()
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.trips.Create(r.Context(), trip); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.log(r).Debug("trip created",
		slog.Int64("trip_id", trip.ID),
		slog.Int64("itinerary_id", trip.ItineraryID))
	respondCreated(w, r, tripEnvelope(trip))
}

// Update handles PUT and PATCH /api/trips/{id}
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var patch domain.TripPatch
	if err := h.decodePatch(w, r, &patch); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	trip, err := h.trips.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tripEnvelope(trip))
}

// Delete handles DELETE /api/trips/{id}
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.trips.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
