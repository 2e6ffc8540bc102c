package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/itinerary-api/internal/api/shared"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/service"
)

// LodgingHandler handles lodging-related HTTP requests
type LodgingHandler struct {
	handler
	lodgings service.LodgingService
}

// NewLodgingHandler creates a new LodgingHandler
func NewLodgingHandler(
	lodgings service.LodgingService,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) *LodgingHandler {
	if lodgings == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("lodging service cannot be nil for LodgingHandler")
	}
	return &LodgingHandler{
		handler:  newHandler("lodging_handler", pagination, logger),
		lodgings: lodgings,
	}
}

func lodgingEnvelope(l *domain.Lodging) ResourceEnvelope {
	return newResourceEnvelope(l, "lodgings", l.ID, Links{
		"itinerary": resourcePath("itineraries", l.ItineraryID),
	})
}

// List handles GET /api/lodgings
func (h *LodgingHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	filter, err := parseLodgingFilter(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	lodgings, total, err := h.lodgings.List(r.Context(), filter, page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListEnvelope(r, lodgings, page, total))
}

// Get handles GET /api/lodgings/{id}
func (h *LodgingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	lodging, err := h.lodgings.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, lodgingEnvelope(lodging))
}

// Create handles POST /api/lodgings
func (h *LodgingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLodgingRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	lodging, err := req.toDomain()
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.lodgings.Create(r.Context(), lodging); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.log(r).Debug("lodging created",
		slog.Int64("lodging_id", lodging.ID),
		slog.Int64("itinerary_id", lodging.ItineraryID))
	respondCreated(w, r, lodgingEnvelope(lodging))
}

// Update handles PUT and PATCH /api/lodgings/{id}
func (h *LodgingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var patch domain.LodgingPatch
	if err := h.decodePatch(w, r, &patch); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	lodging, err := h.lodgings.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, lodgingEnvelope(lodging))
}

// Delete handles DELETE /api/lodgings/{id}
func (h *LodgingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.lodgings.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
