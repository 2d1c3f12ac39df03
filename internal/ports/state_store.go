package ports

import (
	"context"

	"github.com/bnema/social-agent-cli/internal/domain"
)

type AgentConfigStore interface {
	Load(ctx context.Context) (domain.AgentConfig, error)
	Save(ctx context.Context, config domain.AgentConfig) error
}

type TrackedUserStore interface {
	Load(ctx context.Context) ([]domain.TrackedUser, error)
	Save(ctx context.Context, users []domain.TrackedUser) error
}

type HistoryStore interface {
	Load(ctx context.Context) (domain.History, error)
	Save(ctx context.Context, history domain.History) error
}
