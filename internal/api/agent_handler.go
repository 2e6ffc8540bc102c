package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/itinerary-api/internal/api/shared"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/service"
)

// AgentHandler handles agent-related HTTP requests
type AgentHandler struct {
	handler
	agents service.AgentService
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(
	agents service.AgentService,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) *AgentHandler {
	if agents == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("agent service cannot be nil for AgentHandler")
	}
	return &AgentHandler{
		handler: newHandler("agent_handler", pagination, logger),
		agents:  agents,
	}
}

func agentEnvelope(a *domain.Agent) ResourceEnvelope {
	return newResourceEnvelope(a, "agents", a.ID, nil)
}

// List handles GET /api/agents
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	filter, err := parseAgentFilter(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	agents, total, err := h.agents.List(r.Context(), filter, page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListEnvelope(r, agents, page, total))
}

// Get handles GET /api/agents/{id}
func (h *AgentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	agent, err := h.agents.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, agentEnvelope(agent))
}

// Create handles POST /api/agents
func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAgentRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	agent := req.toDomain()
	if err := h.agents.Create(r.Context(), agent); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.log(r).Debug("agent created", slog.Int64("agent_id", agent.ID))
	respondCreated(w, r, agentEnvelope(agent))
}

// Update handles PUT and PATCH /api/agents/{id}
func (h *AgentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var patch domain.AgentPatch
	if err := h.decodePatch(w, r, &patch); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	agent, err := h.agents.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, agentEnvelope(agent))
}

// Delete handles DELETE /api/agents/{id}
func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.agents.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
