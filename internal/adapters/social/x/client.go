package x

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/social-agent-cli/internal/domain"
	"github.com/bnema/social-agent-cli/internal/ports"
)

const (
	DefaultBaseURL  = "https://api.twitter.com"
	maxResponseSize = 1 << 20
)

type API struct {
	BaseURL string
}

// Client talks to the X API v2. HTTPClient must sign requests; see NewOAuth1HTTPClient.
type Client struct {
	API            API
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.SocialClient = Client{}

type apiTweet struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	AuthorID        string `json:"author_id"`
	InReplyToUserID string `json:"in_reply_to_user_id"`
	CreatedAt       string `json:"created_at"`
}

type apiUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type apiError struct {
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

type userResponse struct {
	Data   *apiUser   `json:"data"`
	Errors []apiError `json:"errors"`
}

type tweetsResponse struct {
	Data     []apiTweet `json:"data"`
	Includes struct {
		Users []apiUser `json:"users"`
	} `json:"includes"`
	Errors []apiError `json:"errors"`
}

type createTweetRequest struct {
	Text  string            `json:"text"`
	Reply *createTweetReply `json:"reply,omitempty"`
}

type createTweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type createTweetResponse struct {
	Data *apiTweet `json:"data"`
}

type problemResponse struct {
	Title  string     `json:"title"`
	Detail string     `json:"detail"`
	Errors []apiError `json:"errors"`
}

func (c Client) ResolveUserID(ctx context.Context, username string) (string, error) {
	username = domain.NormalizeUsername(username)
	if username == "" {
		return "", errors.New("username is required")
	}

	var payload userResponse
	if err := c.do(ctx, http.MethodGet, "/2/users/by/username/"+url.PathEscape(username), nil, nil, &payload); err != nil {
		return "", fmt.Errorf("lookup user %s: %w", username, err)
	}

	if payload.Data == nil || payload.Data.ID == "" {
		if len(payload.Errors) > 0 {
			return "", fmt.Errorf("lookup user %s: %w: %s", username, domain.ErrUserNotFound, describeErrors(payload.Errors))
		}
		return "", fmt.Errorf("lookup user %s: %w", username, domain.ErrUserNotFound)
	}

	return payload.Data.ID, nil
}

func (c Client) FetchTimeline(ctx context.Context, userID string, query ports.TimelineQuery) ([]domain.Post, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	values := url.Values{}
	values.Set("max_results", strconv.Itoa(clampMaxResults(query.MaxResults)))
	values.Set("tweet.fields", "created_at,author_id,in_reply_to_user_id")
	if query.ExcludeRetweetsReplies {
		values.Set("exclude", "retweets,replies")
	}

	posts, err := c.fetchTweets(ctx, "/2/users/"+url.PathEscape(userID)+"/tweets", values)
	if err != nil {
		return nil, fmt.Errorf("timeline of %s: %w", userID, err)
	}

	return posts, nil
}

func (c Client) FetchMentions(ctx context.Context, userID string, maxResults int) ([]domain.Post, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	values := url.Values{}
	values.Set("max_results", strconv.Itoa(clampMaxResults(maxResults)))
	values.Set("expansions", "author_id")
	values.Set("tweet.fields", "created_at,author_id,in_reply_to_user_id")
	values.Set("user.fields", "username")

	posts, err := c.fetchTweets(ctx, "/2/users/"+url.PathEscape(userID)+"/mentions", values)
	if err != nil {
		return nil, fmt.Errorf("mentions of %s: %w", userID, err)
	}

	return posts, nil
}

func (c Client) Publish(ctx context.Context, text string, inReplyToID string) (domain.Post, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Post{}, errors.New("post text is required")
	}

	body := createTweetRequest{Text: text}
	if inReplyToID != "" {
		body.Reply = &createTweetReply{InReplyToTweetID: inReplyToID}
	}

	var payload createTweetResponse
	if err := c.do(ctx, http.MethodPost, "/2/tweets", nil, body, &payload); err != nil {
		return domain.Post{}, fmt.Errorf("publish post: %w", err)
	}
	if payload.Data == nil || payload.Data.ID == "" {
		return domain.Post{}, errors.New("publish post: response missing post id")
	}

	return domain.Post{
		ID:          payload.Data.ID,
		Text:        payload.Data.Text,
		InReplyToID: inReplyToID,
	}, nil
}

func (c Client) fetchTweets(ctx context.Context, path string, query url.Values) ([]domain.Post, error) {
	var payload tweetsResponse
	if err := c.do(ctx, http.MethodGet, path, query, nil, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}

	if len(payload.Data) == 0 && len(payload.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrFetch, describeErrors(payload.Errors))
	}

	usernames := make(map[string]string, len(payload.Includes.Users))
	for _, user := range payload.Includes.Users {
		usernames[user.ID] = user.Username
	}

	posts := make([]domain.Post, 0, len(payload.Data))
	for _, tweet := range payload.Data {
		posts = append(posts, domain.Post{
			ID:              tweet.ID,
			Text:            tweet.Text,
			AuthorID:        tweet.AuthorID,
			AuthorUsername:  usernames[tweet.AuthorID],
			InReplyToUserID: tweet.InReplyToUserID,
			CreatedAt:       parseTime(tweet.CreatedAt),
		})
	}

	return posts, nil
}

func (c Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	endpoint, err := buildAPIURL(c.API.BaseURL, path)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("status %d: %s", resp.StatusCode, describeProblem(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// clampMaxResults keeps the value inside the 5..100 range the v2 endpoints accept.
func clampMaxResults(n int) int {
	switch {
	case n < 5:
		return 5
	case n > 100:
		return 100
	default:
		return n
	}
}

func describeProblem(data []byte) string {
	var problem problemResponse
	if err := json.Unmarshal(data, &problem); err != nil {
		return strings.TrimSpace(string(data))
	}

	switch {
	case problem.Title != "" && problem.Detail != "":
		return problem.Title + ": " + problem.Detail
	case problem.Title != "":
		return problem.Title
	case len(problem.Errors) > 0:
		return describeErrors(problem.Errors)
	default:
		return strings.TrimSpace(string(data))
	}
}

func describeErrors(errs []apiError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		switch {
		case e.Detail != "":
			parts = append(parts, e.Detail)
		case e.Message != "":
			parts = append(parts, e.Message)
		case e.Title != "":
			parts = append(parts, e.Title)
		}
	}
	if len(parts) == 0 {
		return "unknown api error"
	}

	return strings.Join(parts, "; ")
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + path, nil
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
