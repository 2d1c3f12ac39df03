package jsonfile

import (
	"time"

	"github.com/bnema/social-agent-cli/internal/domain"
)

type agentSchema struct {
	AgentHandle       string   `json:"agentHandle"`
	AgentSystemPrompt string   `json:"agentSystemPrompt"`
	AgentTweetTopics  []string `json:"agentTweetTopics"`
	AgentUserID       string   `json:"agentUserId,omitempty"`
}

type userSchema struct {
	Username string `json:"username"`
	ID       string `json:"id,omitempty"`
}

type historySchema struct {
	Tweets []tweetSchema `json:"tweets"`
}

type tweetSchema struct {
	ID                string `json:"id"`
	Text              string `json:"text"`
	InReplyToID       string `json:"in_reply_to_id,omitempty"`
	AuthorID          string `json:"author_id,omitempty"`
	AuthorUsername    string `json:"author_username,omitempty"`
	InReplyToUsername string `json:"in_reply_to_username,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
}

func toAgentSchema(config domain.AgentConfig) agentSchema {
	topics := config.Topics
	if topics == nil {
		topics = []string{}
	}

	return agentSchema{
		AgentHandle:       config.Handle,
		AgentSystemPrompt: config.SystemPrompt,
		AgentTweetTopics:  topics,
		AgentUserID:       config.CachedUserID,
	}
}

func fromAgentSchema(schema agentSchema) domain.AgentConfig {
	return domain.AgentConfig{
		Handle:       schema.AgentHandle,
		SystemPrompt: schema.AgentSystemPrompt,
		Topics:       schema.AgentTweetTopics,
		CachedUserID: schema.AgentUserID,
	}
}

func toUserSchemas(users []domain.TrackedUser) []userSchema {
	encoded := make([]userSchema, 0, len(users))
	for _, user := range users {
		encoded = append(encoded, userSchema{Username: user.Username, ID: user.ID})
	}

	return encoded
}

func fromUserSchemas(schemas []userSchema) []domain.TrackedUser {
	users := make([]domain.TrackedUser, 0, len(schemas))
	for _, schema := range schemas {
		users = append(users, domain.TrackedUser{Username: schema.Username, ID: schema.ID})
	}

	return users
}

func toHistorySchema(history domain.History) historySchema {
	tweets := make([]tweetSchema, 0, len(history.Posts))
	for _, post := range history.Posts {
		tweets = append(tweets, tweetSchema{
			ID:                post.ID,
			Text:              post.Text,
			InReplyToID:       post.InReplyToID,
			AuthorID:          post.AuthorID,
			AuthorUsername:    post.AuthorUsername,
			InReplyToUsername: post.InReplyToUsername,
			CreatedAt:         formatTime(post.CreatedAt),
		})
	}

	return historySchema{Tweets: tweets}
}

func fromHistorySchema(schema historySchema) domain.History {
	posts := make([]domain.Post, 0, len(schema.Tweets))
	for _, tweet := range schema.Tweets {
		posts = append(posts, domain.Post{
			ID:                tweet.ID,
			Text:              tweet.Text,
			InReplyToID:       tweet.InReplyToID,
			AuthorID:          tweet.AuthorID,
			AuthorUsername:    tweet.AuthorUsername,
			InReplyToUsername: tweet.InReplyToUsername,
			CreatedAt:         parseTime(tweet.CreatedAt),
		})
	}

	return domain.History{Posts: posts}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
