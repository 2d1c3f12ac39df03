package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/social-agent-cli/internal/domain"
	"go.uber.org/zap"
)

// compose asks the completion client for a post answering prompt.
func (r *Runner) compose(ctx context.Context, systemPrompt string, prompt string) (string, error) {
	completion, err := r.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}
	if completion.Refused {
		if completion.Refusal != "" {
			return "", fmt.Errorf("%w: %s", domain.ErrGenerationRefused, completion.Refusal)
		}
		return "", domain.ErrGenerationRefused
	}

	text := strings.TrimSpace(completion.Text)
	if text == "" {
		return "", domain.ErrEmptyGeneration
	}

	return text, nil
}

// post generates and publishes a post for prompt, as a reply when inReplyTo
// has an id. In dry run mode nothing is published and history is untouched.
func (r *Runner) post(ctx context.Context, run *runContext, prompt string, inReplyTo domain.Post) error {
	inReplyToID := inReplyTo.ID

	text, err := r.compose(ctx, run.state.Agent.SystemPrompt, prompt)
	if err != nil {
		return err
	}

	draft := domain.Draft{Text: text, InReplyToID: inReplyToID}

	if r.opts.DryRun {
		run.logger.Info("dry run, not publishing",
			zap.String("text", text),
			zap.String("in_reply_to_id", inReplyToID))
		run.report.Drafts = append(run.report.Drafts, draft)
		return nil
	}

	published, err := r.social.Publish(ctx, text, inReplyToID)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	if published.Text == "" {
		published.Text = text
	}

	run.state.History.Append(domain.Post{
		ID:                published.ID,
		Text:              published.Text,
		AuthorID:          run.agentUserID,
		AuthorUsername:    run.state.Agent.Handle,
		InReplyToID:       inReplyToID,
		InReplyToUsername: inReplyTo.AuthorUsername,
		CreatedAt:         r.clock.Now().UTC(),
	})

	draft.PostID = published.ID
	run.report.Drafts = append(run.report.Drafts, draft)
	run.logger.Info("published post",
		zap.String("post_id", published.ID),
		zap.String("in_reply_to_id", inReplyToID))

	return nil
}
