package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/social-agent-cli/internal/domain"
)

type Status struct {
	Handle        string    `json:"handle"`
	AgentUserID   string    `json:"agent_user_id,omitempty"`
	Topics        []string  `json:"topics"`
	TrackedUsers  int       `json:"tracked_users"`
	ResolvedUsers int       `json:"resolved_users"`
	HistoryPosts  int       `json:"history_posts"`
	AgentPosts    int       `json:"agent_posts"`
	LastPostAt    time.Time `json:"last_post_at,omitzero"`
}

type QueryService struct {
	stores Stores
}

func NewQueryService(stores Stores) *QueryService {
	return &QueryService{stores: stores}
}

// Status summarizes the local state without touching the network.
func (s *QueryService) Status(ctx context.Context) (Status, error) {
	agent, err := s.stores.Agent.Load(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("load agent config: %w", err)
	}
	users, err := s.stores.Users.Load(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("load tracked users: %w", err)
	}
	history, err := s.stores.History.Load(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("load history: %w", err)
	}

	status := Status{
		Handle:       agent.Handle,
		AgentUserID:  agent.CachedUserID,
		Topics:       agent.Topics,
		TrackedUsers: len(users),
		HistoryPosts: history.Len(),
	}
	for _, user := range users {
		if user.ID != "" {
			status.ResolvedUsers++
		}
	}

	for _, post := range history.AuthoredBy(agent.CachedUserID) {
		status.AgentPosts++
		if post.CreatedAt.After(status.LastPostAt) {
			status.LastPostAt = post.CreatedAt
		}
	}

	return status, nil
}

// History returns the newest limit entries, oldest first. limit <= 0 returns all.
func (s *QueryService) History(ctx context.Context, limit int) ([]domain.Post, error) {
	history, err := s.stores.History.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	posts := history.Posts
	if limit > 0 && len(posts) > limit {
		posts = posts[len(posts)-limit:]
	}

	return posts, nil
}
