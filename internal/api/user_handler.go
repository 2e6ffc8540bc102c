package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/itinerary-api/internal/api/shared"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/service"
)

// UserHandler handles user-related HTTP requests, including the users of an
// agency.
type UserHandler struct {
	handler
	users service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	users service.UserService,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) *UserHandler {
	if users == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("user service cannot be nil for UserHandler")
	}
	return &UserHandler{
		handler: newHandler("user_handler", pagination, logger),
		users:   users,
	}
}

func userEnvelope(u *domain.User) ResourceEnvelope {
	return newResourceEnvelope(u, "users", u.ID, Links{
		"agency":      resourcePath("agencies", u.AgencyID),
		"itineraries": resourcePath("users", u.ID) + "/itineraries",
	})
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	filter, err := parseUserFilter(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	users, total, err := h.users.List(r.Context(), filter, page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListEnvelope(r, users, page, total))
}

// ListByAgency handles GET /api/agencies/{id}/users
func (h *UserHandler) ListByAgency(w http.ResponseWriter, r *http.Request) {
	agencyID, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	page, err := h.page(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	filter, err := parseUserFilter(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	users, total, err := h.users.ListByAgency(r.Context(), agencyID, filter, page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListEnvelope(r, users, page, total))
}

// Get handles GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userEnvelope(user))
}

// Create handles POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user := req.toDomain()
	if err := h.users.Create(r.Context(), user); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.log(r).Debug("user created",
		slog.Int64("user_id", user.ID),
		slog.Int64("agency_id", user.AgencyID))
	respondCreated(w, r, userEnvelope(user))
}

// Update handles PUT and PATCH /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var patch domain.UserPatch
	if err := h.decodePatch(w, r, &patch); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.users.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userEnvelope(user))
}

// Delete handles DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
