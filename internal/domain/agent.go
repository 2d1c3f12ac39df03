package domain

import (
	"strings"
	"time"
)

type AgentConfig struct {
	Handle       string
	SystemPrompt string
	Topics       []string
	// CachedUserID is filled by the identity resolver the first time the
	// handle is looked up and persisted with the rest of the config.
	CachedUserID string
}

func (c AgentConfig) Validate() error {
	if strings.TrimSpace(c.Handle) == "" {
		return ErrHandleRequired
	}

	return nil
}

type TrackedUser struct {
	Username string
	ID       string
}

type Post struct {
	ID                string
	Text              string
	AuthorID          string
	AuthorUsername    string
	InReplyToID       string
	InReplyToUsername string
	// InReplyToUserID is only known for freshly fetched posts and is not persisted.
	InReplyToUserID string
	CreatedAt       time.Time
}

// RunState is everything one run reads at start and writes back at the end.
type RunState struct {
	Agent   AgentConfig
	Users   []TrackedUser
	History History
}

// SetUserID caches a resolved id on every entry matching username and reports
// whether any entry matched.
func SetUserID(users []TrackedUser, username string, id string) bool {
	matched := false
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			users[i].ID = id
			matched = true
		}
	}

	return matched
}

// NormalizeUsername strips whitespace and a leading "@".
func NormalizeUsername(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "@")
}
