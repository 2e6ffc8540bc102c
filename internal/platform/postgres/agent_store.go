package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/phrazzld/itinerary-api/internal/store"
)

const agentColumns = "id, first_name, last_name, phone, email"

// PostgresAgentStore implements the store.AgentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAgentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAgentStore creates a new PostgreSQL implementation of the AgentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAgentStore(db store.DBTX, logger *slog.Logger) *PostgresAgentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresAgentStore{db: db, logger: componentLogger(logger, "agent_store")}
}

// Ensure PostgresAgentStore implements store.AgentStore interface
var _ store.AgentStore = (*PostgresAgentStore)(nil)

// List implements store.AgentStore.List
// The name filter matches either the first or the last name.
func (s *PostgresAgentStore) List(
	ctx context.Context,
	filter store.AgentFilter,
	page store.Page,
) ([]domain.Agent, int, error) {
	q := newListQuery("agents", agentColumns, "id")
	q.containsAny([]string{"first_name", "last_name"}, filter.Name)
	q.contains("email", filter.Email)

	agents, total, err := runList[domain.Agent](ctx, s.db, q, page)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list agents",
			slog.String("error", err.Error()))
		return nil, 0, err
	}
	return agents, total, nil
}

// GetByID implements store.AgentStore.GetByID
// Returns store.ErrAgentNotFound if the agent does not exist.
func (s *PostgresAgentStore) GetByID(ctx context.Context, id int64) (*domain.Agent, error) {
	var agent domain.Agent
	err := sqlx.GetContext(ctx, s.db, &agent,
		"SELECT "+agentColumns+" FROM agents WHERE id = $1", id)
	if err != nil {
		return nil, MapError(err, store.ErrAgentNotFound)
	}
	return &agent, nil
}

// Create implements store.AgentStore.Create
// Returns store.ErrEmailExists if another agent already uses the email.
func (s *PostgresAgentStore) Create(ctx context.Context, agent *domain.Agent) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO agents (first_name, last_name, phone, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		agent.FirstName, agent.LastName, agent.Phone, agent.Email,
	).Scan(&agent.ID)
	if err != nil {
		mapped := MapError(err, nil)
		if IsUniqueViolation(err) {
			log.Debug("agent email already exists")
		} else {
			log.Error("failed to create agent", slog.String("error", err.Error()))
		}
		return mapped
	}

	log.Debug("agent created", slog.Int64("agent_id", agent.ID))
	return nil
}

// Update implements store.AgentStore.Update
func (s *PostgresAgentStore) Update(ctx context.Context, agent *domain.Agent) error {
	return execAffecting(ctx, s.db, store.ErrAgentNotFound, `
		UPDATE agents
		SET first_name = $1, last_name = $2, phone = $3, email = $4
		WHERE id = $5`,
		agent.FirstName, agent.LastName, agent.Phone, agent.Email, agent.ID,
	)
}

// Delete implements store.AgentStore.Delete
func (s *PostgresAgentStore) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, s.db, store.ErrAgentNotFound,
		"DELETE FROM agents WHERE id = $1", id)
}
