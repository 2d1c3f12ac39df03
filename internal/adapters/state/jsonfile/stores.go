package jsonfile

import (
	"context"

	"github.com/bnema/social-agent-cli/internal/domain"
	"github.com/bnema/social-agent-cli/internal/ports"
)

type AgentStore struct {
	doc document
}

var _ ports.AgentConfigStore = (*AgentStore)(nil)

func NewAgentStore(path string) *AgentStore {
	return &AgentStore{doc: newDocument(path, "agent config")}
}

func (s *AgentStore) Load(ctx context.Context) (domain.AgentConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.AgentConfig{}, err
	}

	var schema agentSchema
	if _, err := s.doc.read(&schema); err != nil {
		return domain.AgentConfig{}, err
	}

	return fromAgentSchema(schema), nil
}

func (s *AgentStore) Save(ctx context.Context, config domain.AgentConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.doc.write(toAgentSchema(config))
}

type UserStore struct {
	doc document
}

var _ ports.TrackedUserStore = (*UserStore)(nil)

func NewUserStore(path string) *UserStore {
	return &UserStore{doc: newDocument(path, "tracked users")}
}

func (s *UserStore) Load(ctx context.Context) ([]domain.TrackedUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var schemas []userSchema
	if _, err := s.doc.read(&schemas); err != nil {
		return nil, err
	}

	return fromUserSchemas(schemas), nil
}

func (s *UserStore) Save(ctx context.Context, users []domain.TrackedUser) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.doc.write(toUserSchemas(users))
}

type HistoryStore struct {
	doc document
}

var _ ports.HistoryStore = (*HistoryStore)(nil)

func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{doc: newDocument(path, "post history")}
}

func (s *HistoryStore) Load(ctx context.Context) (domain.History, error) {
	if err := ctx.Err(); err != nil {
		return domain.History{}, err
	}

	var schema historySchema
	if _, err := s.doc.read(&schema); err != nil {
		return domain.History{}, err
	}

	return fromHistorySchema(schema), nil
}

func (s *HistoryStore) Save(ctx context.Context, history domain.History) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.doc.write(toHistorySchema(history))
}
