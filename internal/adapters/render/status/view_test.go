package status

import (
	"testing"
	"time"

	"github.com/bnema/social-agent-cli/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAgentStatus(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	output, err := Render(application.Status{
		Handle:        "marv",
		AgentUserID:   "a1",
		Topics:        []string{"coffee", "robots"},
		TrackedUsers:  4,
		ResolvedUsers: 2,
		HistoryPosts:  9,
		AgentPosts:    5,
		LastPostAt:    now.Add(-3 * time.Hour),
	}, RenderOptions{Now: now, StaleAfter: 48 * time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "Social Agent")
	assert.Contains(t, output, "@marv (a1)")
	assert.Contains(t, output, "coffee")
	assert.Contains(t, output, "robots")
	assert.Contains(t, output, "2/4 ids resolved")
	assert.Contains(t, output, "9 posts, 5 by agent")
	assert.Contains(t, output, "last 3 hours ago")
	assert.NotContains(t, output, "[stale]")
}

func TestRenderFlagsStaleAgent(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	output, err := Render(application.Status{
		Handle:     "marv",
		LastPostAt: now.Add(-72 * time.Hour),
	}, RenderOptions{Now: now, StaleAfter: 48 * time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "id not resolved")
	assert.Contains(t, output, "3 days ago")
	assert.Contains(t, output, "[stale]")
	assert.Contains(t, output, "topics:")
	assert.Contains(t, output, "none")
}

func TestRenderWithoutAgent(t *testing.T) {
	output, err := Render(application.Status{}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "No agent configured.")
}

func TestRenderNeverPosted(t *testing.T) {
	output, err := Render(application.Status{Handle: "marv", TrackedUsers: 1}, RenderOptions{Now: time.Now()})

	require.NoError(t, err)
	assert.Contains(t, output, "(never posted)")
	assert.Contains(t, output, "0/1 ids resolved")
}

func TestRenderProgressBarWidth(t *testing.T) {
	t.Parallel()

	bar := renderProgressBar(50, 10, newStyles())
	assert.Contains(t, bar, "=====")
	assert.Contains(t, bar, "-----")
}
