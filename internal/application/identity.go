package application

import (
	"context"
	"fmt"

	"github.com/bnema/social-agent-cli/internal/domain"
	"github.com/bnema/social-agent-cli/internal/ports"
	"go.uber.org/zap"
)

type IdentityResolver struct {
	social ports.SocialClient
	logger *zap.Logger
}

func NewIdentityResolver(social ports.SocialClient, logger *zap.Logger) *IdentityResolver {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &IdentityResolver{social: social, logger: logger}
}

// AgentUserID returns the cached id when present. Otherwise it looks the
// handle up once and caches the result into agent.
func (r *IdentityResolver) AgentUserID(ctx context.Context, agent *domain.AgentConfig) (string, error) {
	if agent.CachedUserID != "" {
		r.logger.Debug("using cached agent user id", zap.String("agent_user_id", agent.CachedUserID))
		return agent.CachedUserID, nil
	}

	r.logger.Info("resolving agent user id", zap.String("handle", agent.Handle))
	id, err := r.social.ResolveUserID(ctx, agent.Handle)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrIdentityResolution, err)
	}
	if id == "" {
		return "", fmt.Errorf("%w: empty id for %s", domain.ErrIdentityResolution, agent.Handle)
	}

	agent.CachedUserID = id
	return id, nil
}
