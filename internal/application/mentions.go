package application

import (
	"context"

	"github.com/bnema/social-agent-cli/internal/domain"
	"go.uber.org/zap"
)

// replyToMentions answers every eligible mention. Failures stay inside the
// loop and never reach the caller.
func (r *Runner) replyToMentions(ctx context.Context, run *runContext) {
	mentions, err := r.social.FetchMentions(ctx, run.agentUserID, r.opts.MentionsLimit)
	if err != nil {
		run.logger.Warn("skipping mentions", zap.Error(err))
		run.report.AddSoftFailure(err)
		return
	}
	run.report.MentionsSeen = len(mentions)

	for _, mention := range mentions {
		logger := run.logger.With(zap.String("mention_id", mention.ID))

		if reason := domain.MentionDecision(mention, run.state.History, run.agentUserID); reason != domain.SkipNone {
			logger.Debug("skipping mention", zap.String("reason", string(reason)))
			continue
		}

		if err := r.post(ctx, run, mention.Text, mention); err != nil {
			logger.Warn("reply to mention failed", zap.Error(err))
			continue
		}
		run.report.MentionsAnswered++
	}
}
