package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// AgentService provides travel agent operations.
type AgentService interface {
	List(ctx context.Context, filter store.AgentFilter, page store.Page) ([]domain.Agent, int, error)
	Get(ctx context.Context, id int64) (*domain.Agent, error)
	// Create returns store.ErrEmailExists when the email is already used by another agent.
	Create(ctx context.Context, agent *domain.Agent) error
	Update(ctx context.Context, id int64, patch domain.AgentPatch) (*domain.Agent, error)
	Delete(ctx context.Context, id int64) error
}

type agentService struct {
	base
}

// NewAgentService creates a new AgentService
func NewAgentService(sessions store.SessionProvider, logger *slog.Logger) AgentService {
	return &agentService{base: newBase("agent", sessions, logger)}
}

func (s *agentService) List(
	ctx context.Context,
	filter store.AgentFilter,
	page store.Page,
) ([]domain.Agent, int, error) {
	var (
		agents []domain.Agent
		total  int
	)
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		agents, total, err = st.Agents.List(ctx, filter, page)
		return err
	})
	if err != nil {
		return nil, 0, s.fail(ctx, "list", "failed to list agents", err)
	}
	return agents, total, nil
}

func (s *agentService) Get(ctx context.Context, id int64) (*domain.Agent, error) {
	var agent *domain.Agent
	err := s.sessions.InReadSession(ctx, func(ctx context.Context, st store.Stores) error {
		var err error
		agent, err = st.Agents.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "get", "failed to retrieve agent", err)
	}
	return agent, nil
}

func (s *agentService) Create(ctx context.Context, agent *domain.Agent) error {
	if err := agent.Validate(); err != nil {
		return s.fail(ctx, "create", "agent validation failed", err)
	}
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Agents.Create(ctx, agent)
	})
	if err != nil {
		return s.fail(ctx, "create", "failed to create agent", err)
	}

	s.log(ctx).Info("agent created", slog.Int64("agent_id", agent.ID))
	return nil
}

func (s *agentService) Update(ctx context.Context, id int64, patch domain.AgentPatch) (*domain.Agent, error) {
	var agent *domain.Agent
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		current, err := st.Agents.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(current); err != nil {
			return err
		}
		if err := current.Validate(); err != nil {
			return err
		}
		if err := st.Agents.Update(ctx, current); err != nil {
			return err
		}
		agent = current
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "update", "failed to update agent", err)
	}

	s.log(ctx).Info("agent updated", slog.Int64("agent_id", id))
	return agent, nil
}

func (s *agentService) Delete(ctx context.Context, id int64) error {
	err := s.sessions.InSession(ctx, func(ctx context.Context, st store.Stores) error {
		return st.Agents.Delete(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete", "failed to delete agent", err)
	}

	s.log(ctx).Info("agent deleted", slog.Int64("agent_id", id))
	return nil
}
