package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/itinerary-api/internal/api/shared"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/service"
)

// ItineraryHandler handles itinerary-related HTTP requests, including the
// detail views and the itineraries of a user.
type ItineraryHandler struct {
	handler
	itineraries service.ItineraryService
}

// NewItineraryHandler creates a new ItineraryHandler
func NewItineraryHandler(
	itineraries service.ItineraryService,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) *ItineraryHandler {
	if itineraries == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("itinerary service cannot be nil for ItineraryHandler")
	}
	return &ItineraryHandler{
		handler:     newHandler("itinerary_handler", pagination, logger),
		itineraries: itineraries,
	}
}

func itineraryLinks(id, userID int64) Links {
	children := "?itinerary_id=" + strconv.FormatInt(id, 10)
	return Links{
		"user":     resourcePath("users", userID),
		"trips":    resourcePath("trips") + children,
		"lodgings": resourcePath("lodgings") + children,
		"details":  resourcePath("itineraries", id) + "/details",
	}
}

func itineraryEnvelope(it *domain.Itinerary) ResourceEnvelope {
	return newResourceEnvelope(it, "itineraries", it.ID, itineraryLinks(it.ID, it.UserID))
}

func itineraryDetailEnvelope(d *domain.ItineraryDetail) ResourceEnvelope {
	return newResourceEnvelope(d, "itineraries", d.ID, itineraryLinks(d.ID, d.UserID))
}

// List handles GET /api/itineraries
func (h *ItineraryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	filter, err := parseItineraryFilter(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	itineraries, total, err := h.itineraries.List(r.Context(), filter, page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListEnvelope(r, itineraries, page, total))
}

// ListForUser handles GET /api/users/{id}/itineraries. Every itinerary is
// returned with its trips and lodgings.
func (h *ItineraryHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	page, err := h.page(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	details, total, err := h.itineraries.ListForUser(r.Context(), userID, page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListEnvelope(r, details, page, total))
}

// Get handles GET /api/itineraries/{id}. With ?detail=true the trips and
// lodgings are included.
func (h *ItineraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := boolParam(r, "detail")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if detail {
		h.GetDetail(w, r)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	itinerary, err := h.itineraries.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, itineraryEnvelope(itinerary))
}

// GetDetail handles GET /api/itineraries/{id}/details
func (h *ItineraryHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	detail, err := h.itineraries.GetDetail(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, itineraryDetailEnvelope(detail))
}

// Create handles POST /api/itineraries
func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItineraryRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	itinerary, err := req.toDomain()
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.itineraries.Create(r.Context(), itinerary); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.log(r).Debug("itinerary created",
		slog.Int64("itinerary_id", itinerary.ID),
		slog.Int64("user_id", itinerary.UserID))
	respondCreated(w, r, itineraryEnvelope(itinerary))
}

// Update handles PUT and PATCH /api/itineraries/{id}
func (h *ItineraryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var patch domain.ItineraryPatch
	if err := h.decodePatch(w, r, &patch); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	itinerary, err := h.itineraries.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, itineraryEnvelope(itinerary))
}

// Delete handles DELETE /api/itineraries/{id}
func (h *ItineraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.itineraries.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
