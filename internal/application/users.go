package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/social-agent-cli/internal/domain"
	"github.com/bnema/social-agent-cli/internal/ports"
)

type UserService struct {
	store  ports.TrackedUserStore
	social ports.SocialClient
}

type ResolveResult struct {
	Username string
	ID       string
	Cached   bool
	Err      error
}

func NewUserService(store ports.TrackedUserStore, social ports.SocialClient) *UserService {
	return &UserService{store: store, social: social}
}

func (s *UserService) List(ctx context.Context) ([]domain.TrackedUser, error) {
	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tracked users: %w", err)
	}

	return users, nil
}

// Add appends usernames not already tracked and returns the ones it added.
func (s *UserService) Add(ctx context.Context, usernames ...string) ([]string, error) {
	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tracked users: %w", err)
	}

	var added []string
	for _, raw := range usernames {
		username := domain.NormalizeUsername(raw)
		if username == "" {
			return nil, fmt.Errorf("invalid username %q", raw)
		}
		if indexOfUser(users, username) >= 0 {
			continue
		}

		users = append(users, domain.TrackedUser{Username: username})
		added = append(added, username)
	}

	if len(added) == 0 {
		return nil, nil
	}

	if err := s.store.Save(ctx, users); err != nil {
		return nil, fmt.Errorf("save tracked users: %w", err)
	}

	return added, nil
}

func (s *UserService) Remove(ctx context.Context, username string) error {
	users, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tracked users: %w", err)
	}

	index := indexOfUser(users, domain.NormalizeUsername(username))
	if index < 0 {
		return fmt.Errorf("%w: %s", domain.ErrTrackedUserNotFound, username)
	}

	users = append(users[:index], users[index+1:]...)
	if err := s.store.Save(ctx, users); err != nil {
		return fmt.Errorf("save tracked users: %w", err)
	}

	return nil
}

// Resolve looks up every tracked user without a cached id. Per-user failures
// are reported in the results; the ids that did resolve are still saved.
func (s *UserService) Resolve(ctx context.Context) ([]ResolveResult, error) {
	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tracked users: %w", err)
	}

	results := make([]ResolveResult, 0, len(users))
	changed := false
	for i := range users {
		if users[i].ID != "" {
			results = append(results, ResolveResult{Username: users[i].Username, ID: users[i].ID, Cached: true})
			continue
		}

		id, err := s.social.ResolveUserID(ctx, users[i].Username)
		if err != nil {
			results = append(results, ResolveResult{Username: users[i].Username, Err: err})
			continue
		}

		users[i].ID = id
		changed = true
		results = append(results, ResolveResult{Username: users[i].Username, ID: id})
	}

	if changed {
		if err := s.store.Save(ctx, users); err != nil {
			return results, fmt.Errorf("save tracked users: %w", err)
		}
	}

	return results, nil
}

func indexOfUser(users []domain.TrackedUser, username string) int {
	for i, user := range users {
		if strings.EqualFold(user.Username, username) {
			return i
		}
	}
	return -1
}
