package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/itinerary-api/internal/api/shared"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/service"
)

// AgencyHandler handles agency-related HTTP requests
type AgencyHandler struct {
	handler
	agencies service.AgencyService
}

// NewAgencyHandler creates a new AgencyHandler
func NewAgencyHandler(
	agencies service.AgencyService,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) *AgencyHandler {
	if agencies == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("agency service cannot be nil for AgencyHandler")
	}
	return &AgencyHandler{
		handler:  newHandler("agency_handler", pagination, logger),
		agencies: agencies,
	}
}

func agencyEnvelope(a *domain.Agency) ResourceEnvelope {
	return newResourceEnvelope(a, "agencies", a.ID, Links{
		"users": resourcePath("agencies", a.ID) + "/users",
	})
}

// List handles GET /api/agencies
func (h *AgencyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	filter, err := parseAgencyFilter(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	agencies, total, err := h.agencies.List(r.Context(), filter, page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListEnvelope(r, agencies, page, total))
}

// Get handles GET /api/agencies/{id}
func (h *AgencyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	agency, err := h.agencies.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, agencyEnvelope(agency))
}

// Create handles POST /api/agencies
func (h *AgencyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAgencyRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	agency := req.toDomain()
	if err := h.agencies.Create(r.Context(), agency); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.log(r).Debug("agency created", slog.Int64("agency_id", agency.ID))
	respondCreated(w, r, agencyEnvelope(agency))
}

// Update handles PUT and PATCH /api/agencies/{id}
func (h *AgencyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var patch domain.AgencyPatch
	if err := h.decodePatch(w, r, &patch); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	agency, err := h.agencies.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, agencyEnvelope(agency))
}

// Delete handles DELETE /api/agencies/{id}
func (h *AgencyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.agencies.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
