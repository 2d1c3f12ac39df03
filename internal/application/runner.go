package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/social-agent-cli/internal/domain"
	"github.com/bnema/social-agent-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Stores struct {
	Agent   ports.AgentConfigStore
	Users   ports.TrackedUserStore
	History ports.HistoryStore
}

type RunOptions struct {
	DryRun          bool
	MaxUserAttempts int
	TopicalFailure  domain.FailurePolicy
	MentionsLimit   int
	TimelineLimit   int
}

func DefaultRunOptions() RunOptions {
	return RunOptions{
		MaxUserAttempts: 5,
		TopicalFailure:  domain.FailurePolicyFatal,
		MentionsLimit:   5,
		TimelineLimit:   5,
	}
}

type Runner struct {
	stores    Stores
	social    ports.SocialClient
	completer ports.Completer
	identity  *IdentityResolver
	clock     ports.Clock
	picker    ports.Picker
	logger    *zap.Logger
	opts      RunOptions
	newRunID  func() string
}

type runContext struct {
	state       *domain.RunState
	report      *domain.RunReport
	agentUserID string
	logger      *zap.Logger
}

func NewRunner(stores Stores, social ports.SocialClient, completer ports.Completer, clock ports.Clock, picker ports.Picker, logger *zap.Logger, opts RunOptions) *Runner {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if picker == nil {
		picker = ports.RandomPicker{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.TopicalFailure == "" {
		opts.TopicalFailure = domain.FailurePolicyFatal
	}

	return &Runner{
		stores:    stores,
		social:    social,
		completer: completer,
		identity:  NewIdentityResolver(social, logger),
		clock:     clock,
		picker:    picker,
		logger:    logger,
		opts:      opts,
		newRunID:  uuid.NewString,
	}
}

// Run executes one agent pass: identity, mentions, one tracked user, one
// topical post, then persistence of every store.
func (r *Runner) Run(ctx context.Context) (domain.RunReport, error) {
	report := domain.RunReport{RunID: r.newRunID(), DryRun: r.opts.DryRun}
	logger := r.logger.With(zap.String("run_id", report.RunID))

	state, err := r.load(ctx)
	if err != nil {
		return report, err
	}

	agentUserID, err := r.identity.AgentUserID(ctx, &state.Agent)
	if err != nil {
		logger.Error("agent identity unavailable", zap.Error(err))
		return report, err
	}
	report.AgentUserID = agentUserID

	run := &runContext{
		state:       &state,
		report:      &report,
		agentUserID: agentUserID,
		logger:      logger.With(zap.String("agent_user_id", agentUserID)),
	}

	r.replyToMentions(ctx, run)
	run.logger.Info("finished mentions",
		zap.Int("seen", report.MentionsSeen),
		zap.Int("answered", report.MentionsAnswered))

	if err := r.replyToTrackedUser(ctx, run); err != nil {
		run.logger.Warn("no tracked user reply", zap.Error(err))
		report.AddSoftFailure(err)
	} else {
		run.logger.Info("finished tracked user",
			zap.String("tracked_user", report.TrackedUser),
			zap.Int("replies", report.TrackedReplies))
	}

	var runErr error
	if err := r.postTopical(ctx, run); err != nil {
		if r.opts.TopicalFailure == domain.FailurePolicySkip {
			run.logger.Warn("topical post skipped", zap.Error(err))
			report.AddSoftFailure(err)
		} else {
			run.logger.Error("topical post failed", zap.Error(err))
			runErr = fmt.Errorf("topical post: %w", err)
		}
	}

	if err := r.persist(context.WithoutCancel(ctx), run); err != nil {
		runErr = errors.Join(runErr, err)
	}

	return report, runErr
}

func (r *Runner) postTopical(ctx context.Context, run *runContext) error {
	topics := run.state.Agent.Topics
	if len(topics) == 0 {
		return domain.ErrNoTopics
	}

	topic := topics[r.picker.IntN(len(topics))]
	run.report.Topic = topic

	if err := r.post(ctx, run, topic, domain.Post{}); err != nil {
		return err
	}
	run.report.TopicalPosted = !r.opts.DryRun

	return nil
}

func (r *Runner) load(ctx context.Context) (domain.RunState, error) {
	agent, err := r.stores.Agent.Load(ctx)
	if err != nil {
		return domain.RunState{}, fmt.Errorf("load agent config: %w", err)
	}
	if err := agent.Validate(); err != nil {
		return domain.RunState{}, fmt.Errorf("load agent config: %w", err)
	}

	users, err := r.stores.Users.Load(ctx)
	if err != nil {
		return domain.RunState{}, fmt.Errorf("load tracked users: %w", err)
	}

	history, err := r.stores.History.Load(ctx)
	if err != nil {
		return domain.RunState{}, fmt.Errorf("load history: %w", err)
	}

	return domain.RunState{Agent: agent, Users: users, History: history}, nil
}

// persist saves each store independently. A dry run leaves the history file alone.
func (r *Runner) persist(ctx context.Context, run *runContext) error {
	var errs []error

	if !r.opts.DryRun {
		if err := r.stores.History.Save(ctx, run.state.History); err != nil {
			run.logger.Error("save history failed", zap.Error(err))
			errs = append(errs, fmt.Errorf("save history: %w", err))
		}
	}
	if err := r.stores.Users.Save(ctx, run.state.Users); err != nil {
		run.logger.Error("save tracked users failed", zap.Error(err))
		errs = append(errs, fmt.Errorf("save tracked users: %w", err))
	}
	if err := r.stores.Agent.Save(ctx, run.state.Agent); err != nil {
		run.logger.Error("save agent config failed", zap.Error(err))
		errs = append(errs, fmt.Errorf("save agent config: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, errors.Join(errs...))
	}

	run.logger.Info("state persisted", zap.Int("history_posts", run.state.History.Len()))
	return nil
}
