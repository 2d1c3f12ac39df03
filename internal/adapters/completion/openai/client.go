package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/social-agent-cli/internal/ports"
)

const (
	DefaultBaseURL     = "https://api.x.ai/v1"
	DefaultModel       = "grok-beta"
	DefaultTemperature = 1.0
	maxResponseSize    = 1 << 20
)

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	BaseURL        string
	APIKey         string
	Model          string
	Temperature    float64
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.Completer = Client{}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
			Refusal *string `json:"refusal"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c Client) Complete(ctx context.Context, systemPrompt string, userPrompt string) (ports.Completion, error) {
	if c.APIKey == "" {
		return ports.Completion{}, errors.New("completion api key is required")
	}

	endpoint, err := buildAPIURL(c.baseURL(), "/chat/completions")
	if err != nil {
		return ports.Completion{}, err
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model(),
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.Temperature,
	})
	if err != nil {
		return ports.Completion{}, fmt.Errorf("encode completion request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return ports.Completion{}, fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return ports.Completion{}, fmt.Errorf("perform completion request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return ports.Completion{}, fmt.Errorf("read completion response: %w", err)
	}

	var payload chatResponse
	decodeErr := json.Unmarshal(data, &payload)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if decodeErr == nil && payload.Error != nil && payload.Error.Message != "" {
			return ports.Completion{}, fmt.Errorf("completion request failed: status %d: %s", resp.StatusCode, payload.Error.Message)
		}
		return ports.Completion{}, fmt.Errorf("completion request failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if decodeErr != nil {
		return ports.Completion{}, fmt.Errorf("decode completion response: %w", decodeErr)
	}

	return toCompletion(payload), nil
}

func toCompletion(payload chatResponse) ports.Completion {
	if len(payload.Choices) == 0 {
		return ports.Completion{}
	}

	message := payload.Choices[0].Message
	if message.Refusal != nil && *message.Refusal != "" {
		return ports.Completion{Refused: true, Refusal: *message.Refusal}
	}
	if message.Content == nil {
		return ports.Completion{}
	}

	return ports.Completion{Text: strings.TrimSpace(*message.Content)}
}

func (c Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c Client) model() string {
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
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
		requestTimeout = 60 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse completion base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("completion base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("completion base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + path, nil
}
