package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/social-agent-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryFixture() (*QueryService, *inMemoryHistoryStore) {
	history := &inMemoryHistoryStore{history: domain.History{Posts: []domain.Post{
		{ID: "r1", AuthorID: "a1", InReplyToID: "m1", CreatedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "m9", AuthorID: "u2"},
		{ID: "p2", AuthorID: "a1", CreatedAt: time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)},
	}}}
	stores := Stores{
		Agent: &inMemoryAgentStore{config: domain.AgentConfig{
			Handle:       "marv",
			Topics:       []string{"coffee", "robots"},
			CachedUserID: "a1",
		}},
		Users:   &inMemoryUserStore{users: []domain.TrackedUser{{Username: "alice", ID: "1"}, {Username: "bob"}}},
		History: history,
	}

	return NewQueryService(stores), history
}

func TestQueryServiceStatus(t *testing.T) {
	t.Parallel()

	service, _ := newQueryFixture()

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Status{
		Handle:        "marv",
		AgentUserID:   "a1",
		Topics:        []string{"coffee", "robots"},
		TrackedUsers:  2,
		ResolvedUsers: 1,
		HistoryPosts:  3,
		AgentPosts:    2,
		LastPostAt:    time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
	}, status)
}

func TestQueryServiceHistoryLimit(t *testing.T) {
	t.Parallel()

	service, _ := newQueryFixture()

	posts, err := service.History(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "m9", posts[0].ID)
	assert.Equal(t, "p2", posts[1].ID)

	all, err := service.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
