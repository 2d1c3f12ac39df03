package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/social-agent-cli/internal/ports"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// Client generates completions with the Gemini API.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
}

var _ ports.Completer = (*Client)(nil)

func NewClient(ctx context.Context, apiKey string, model string, temperature float64) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{
		client:      client,
		model:       model,
		temperature: float32(temperature),
	}, nil
}

func (c *Client) Complete(ctx context.Context, systemPrompt string, userPrompt string) (ports.Completion, error) {
	temp := c.temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temp,
	}

	contents := []*genai.Content{genai.NewContentFromText(userPrompt, genai.RoleUser)}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return ports.Completion{}, fmt.Errorf("gemini generate content: %w", err)
	}

	return toCompletion(res), nil
}

// toCompletion treats a blocked prompt or a safety stop as a refusal.
func toCompletion(res *genai.GenerateContentResponse) ports.Completion {
	if res == nil {
		return ports.Completion{}
	}

	if feedback := res.PromptFeedback; feedback != nil &&
		feedback.BlockReason != "" && feedback.BlockReason != genai.BlockedReasonUnspecified {
		reason := feedback.BlockReasonMessage
		if reason == "" {
			reason = "prompt blocked: " + string(feedback.BlockReason)
		}
		return ports.Completion{Refused: true, Refusal: reason}
	}

	if len(res.Candidates) > 0 && res.Candidates[0] != nil &&
		res.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return ports.Completion{Refused: true, Refusal: "response blocked by safety filters"}
	}

	return ports.Completion{Text: strings.TrimSpace(res.Text())}
}
