package ports

import (
	"context"

	"github.com/bnema/social-agent-cli/internal/domain"
)

type TimelineQuery struct {
	MaxResults int
	// ExcludeRetweetsReplies drops retweets and replies server-side.
	ExcludeRetweetsReplies bool
}

type SocialClient interface {
	ResolveUserID(ctx context.Context, username string) (string, error)
	FetchTimeline(ctx context.Context, userID string, query TimelineQuery) ([]domain.Post, error)
	FetchMentions(ctx context.Context, userID string, maxResults int) ([]domain.Post, error)
	Publish(ctx context.Context, text string, inReplyToID string) (domain.Post, error)
}
