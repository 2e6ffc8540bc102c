package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/itinerary-api/internal/api/shared"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// handler carries what every resource handler shares.
type handler struct {
	pagination config.PaginationConfig
	logger     *slog.Logger
}

func newHandler(component string, pagination config.PaginationConfig, l *slog.Logger) handler {
	if l == nil {
		l = slog.Default()
	}
	return handler{
		pagination: pagination,
		logger:     l.With(slog.String("component", component)),
	}
}

func (h handler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger)
}

// page parses the pagination parameters of r.
func (h handler) page(r *http.Request) (store.Page, error) {
	return parsePage(r.URL.Query(), h.pagination)
}

// decodeBody decodes and validates a create request body.
func (h handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		return translateDecodeError(err)
	}
	if err := shared.ValidateRequest(v); err != nil {
		return translateValidation(err)
	}
	return nil
}

// decodePatch decodes an update body. Keys not named by the patch are rejected.
func (h handler) decodePatch(w http.ResponseWriter, r *http.Request, v any) error {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		return translateDecodeError(err)
	}
	return nil
}

// respondCreated writes env with status 201 and a Location header pointing at
// the new resource.
func respondCreated(w http.ResponseWriter, r *http.Request, env ResourceEnvelope) {
	w.Header().Set("Location", env.Links["self"])
	shared.RespondWithJSON(w, r, http.StatusCreated, env)
}

// boolParam reads an optional boolean query parameter.
func boolParam(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, invalidParam(name, "must be true or false")
	}
	return v, nil
}
