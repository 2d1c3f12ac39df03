package domain

// Draft is a generated text together with where it was (or would have been) posted.
type Draft struct {
	Text        string `json:"text"`
	InReplyToID string `json:"in_reply_to_id,omitempty"`
	PostID      string `json:"post_id,omitempty"`
}

type RunReport struct {
	RunID            string   `json:"run_id"`
	AgentUserID      string   `json:"agent_user_id"`
	DryRun           bool     `json:"dry_run"`
	MentionsSeen     int      `json:"mentions_seen"`
	MentionsAnswered int      `json:"mentions_answered"`
	TrackedUser      string   `json:"tracked_user,omitempty"`
	TrackedAttempts  int      `json:"tracked_attempts"`
	TrackedReplies   int      `json:"tracked_replies"`
	Topic            string   `json:"topic,omitempty"`
	TopicalPosted    bool     `json:"topical_posted"`
	Drafts           []Draft  `json:"drafts,omitempty"`
	SoftFailures     []string `json:"soft_failures,omitempty"`
}

func (r *RunReport) AddSoftFailure(err error) {
	if err == nil {
		return
	}
	r.SoftFailures = append(r.SoftFailures, err.Error())
}
