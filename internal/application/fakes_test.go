package application

import (
	"context"
	"slices"
	"time"

	"github.com/bnema/social-agent-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

type inMemoryAgentStore struct {
	config  domain.AgentConfig
	saves   int
	saveErr error
}

func (s *inMemoryAgentStore) Load(_ context.Context) (domain.AgentConfig, error) {
	config := s.config
	config.Topics = slices.Clone(s.config.Topics)
	return config, nil
}

func (s *inMemoryAgentStore) Save(_ context.Context, config domain.AgentConfig) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.config = config
	return nil
}

type inMemoryUserStore struct {
	users   []domain.TrackedUser
	saves   int
	saveErr error
}

func (s *inMemoryUserStore) Load(_ context.Context) ([]domain.TrackedUser, error) {
	return slices.Clone(s.users), nil
}

func (s *inMemoryUserStore) Save(_ context.Context, users []domain.TrackedUser) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.users = slices.Clone(users)
	return nil
}

type inMemoryHistoryStore struct {
	history domain.History
	saves   int
	saveErr error
}

func (s *inMemoryHistoryStore) Load(_ context.Context) (domain.History, error) {
	return domain.History{Posts: slices.Clone(s.history.Posts)}, nil
}

func (s *inMemoryHistoryStore) Save(ctx context.Context, history domain.History) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.history = domain.History{Posts: slices.Clone(history.Posts)}
	return nil
}

// firstPicker always picks the first candidate.
type firstPicker struct{}

func (firstPicker) IntN(int) int {
	return 0
}

type scriptedPicker struct {
	picks []int
	calls []int
}

func (p *scriptedPicker) IntN(n int) int {
	p.calls = append(p.calls, n)
	if len(p.picks) == 0 {
		return 0
	}
	pick := p.picks[0]
	p.picks = p.picks[1:]
	return pick % n
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

func mockAnyContext() interface{} {
	return mock.Anything
}
