package domain

import "unicode/utf8"

// MinTrackedPostLength is the length a tracked user's post must exceed to be
// worth a reply.
const MinTrackedPostLength = 50

type SkipReason string

const (
	SkipNone            SkipReason = ""
	SkipThreadReply     SkipReason = "mention is a reply in a thread"
	SkipSelfAuthored    SkipReason = "mention authored by the agent"
	SkipAlreadyAnswered SkipReason = "mention already answered"
)

// MentionDecision applies the mention rules in order and returns the first
// reason to skip, or SkipNone when the agent should reply.
func MentionDecision(post Post, history History, agentUserID string) SkipReason {
	if post.InReplyToUserID != "" {
		return SkipThreadReply
	}
	if post.AuthorID != "" && post.AuthorID == agentUserID {
		return SkipSelfAuthored
	}
	if history.HasReplyTo(post.ID, agentUserID) {
		return SkipAlreadyAnswered
	}

	return SkipNone
}

func ShouldReplyToMention(post Post, history History, agentUserID string) bool {
	return MentionDecision(post, history, agentUserID) == SkipNone
}

// ShouldReplyToTrackedPost has no duplicate check: the timeline window is
// recency-bounded, so a qualifying post can be answered again on a later run.
func ShouldReplyToTrackedPost(post Post) bool {
	return utf8.RuneCountInString(post.Text) > MinTrackedPostLength
}
