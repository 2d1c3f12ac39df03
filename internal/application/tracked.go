package application

import (
	"context"
	"fmt"

	"github.com/bnema/social-agent-cli/internal/domain"
	"github.com/bnema/social-agent-cli/internal/ports"
	"go.uber.org/zap"
)

// replyToTrackedUser visits random tracked users until one has a post worth
// answering. At most MaxUserAttempts distinct users are tried.
func (r *Runner) replyToTrackedUser(ctx context.Context, run *runContext) error {
	users := run.state.Users
	if len(users) == 0 {
		return fmt.Errorf("%w: no tracked users", domain.ErrNoEligibleContent)
	}

	attempts := min(max(r.opts.MaxUserAttempts, 1), len(users))
	visited := make(map[int]bool, attempts)

	for range attempts {
		index := r.pickUnvisited(len(users), visited)
		visited[index] = true
		run.report.TrackedAttempts++

		username := users[index].Username
		logger := run.logger.With(zap.String("tracked_user", username))

		replies, err := r.replyToTimeline(ctx, run, index, logger)
		if err != nil {
			logger.Warn("tracked user skipped", zap.Error(err))
			continue
		}
		if replies > 0 {
			run.report.TrackedUser = username
			run.report.TrackedReplies = replies
			return nil
		}

		logger.Info("no eligible posts from tracked user")
	}

	return fmt.Errorf("%w: tried %d tracked users", domain.ErrNoEligibleContent, len(visited))
}

func (r *Runner) replyToTimeline(ctx context.Context, run *runContext, index int, logger *zap.Logger) (int, error) {
	user := run.state.Users[index]

	if user.ID == "" {
		id, err := r.social.ResolveUserID(ctx, user.Username)
		if err != nil {
			return 0, fmt.Errorf("resolve tracked user: %w", err)
		}
		domain.SetUserID(run.state.Users, user.Username, id)
		user.ID = id
		logger.Debug("cached tracked user id", zap.String("user_id", id))
	}

	posts, err := r.social.FetchTimeline(ctx, user.ID, ports.TimelineQuery{
		MaxResults:             r.opts.TimelineLimit,
		ExcludeRetweetsReplies: true,
	})
	if err != nil {
		return 0, err
	}

	replies := 0
	for _, candidate := range posts {
		if !domain.ShouldReplyToTrackedPost(candidate) {
			logger.Debug("post below length floor", zap.String("post_id", candidate.ID))
			continue
		}

		if candidate.AuthorUsername == "" {
			candidate.AuthorUsername = user.Username
		}

		if err := r.post(ctx, run, candidate.Text, candidate); err != nil {
			logger.Warn("reply to tracked post failed", zap.String("post_id", candidate.ID), zap.Error(err))
			continue
		}
		replies++
	}

	return replies, nil
}

// pickUnvisited returns a uniformly random index below n that is not in visited.
func (r *Runner) pickUnvisited(n int, visited map[int]bool) int {
	candidates := make([]int, 0, n-len(visited))
	for i := range n {
		if !visited[i] {
			candidates = append(candidates, i)
		}
	}

	return candidates[r.picker.IntN(len(candidates))]
}
