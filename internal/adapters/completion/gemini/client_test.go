package gemini

import (
	"context"
	"testing"

	"github.com/bnema/social-agent-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		res  *genai.GenerateContentResponse
		want ports.Completion
	}{
		{
			name: "nil response",
			res:  nil,
			want: ports.Completion{},
		},
		{
			name: "text is trimmed",
			res: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content:      genai.NewContentFromText("  hello there \n", genai.RoleModel),
				FinishReason: genai.FinishReasonStop,
			}}},
			want: ports.Completion{Text: "hello there"},
		},
		{
			name: "no candidates is empty",
			res:  &genai.GenerateContentResponse{},
			want: ports.Completion{},
		},
		{
			name: "blocked prompt is a refusal",
			res: &genai.GenerateContentResponse{PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
				BlockReason: genai.BlockedReasonSafety,
			}},
			want: ports.Completion{Refused: true, Refusal: "prompt blocked: SAFETY"},
		},
		{
			name: "block message is preferred",
			res: &genai.GenerateContentResponse{PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
				BlockReason:        genai.BlockedReasonOther,
				BlockReasonMessage: "nope",
			}},
			want: ports.Completion{Refused: true, Refusal: "nope"},
		},
		{
			name: "safety finish is a refusal",
			res: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				FinishReason: genai.FinishReasonSafety,
			}}},
			want: ports.Completion{Refused: true, Refusal: "response blocked by safety filters"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, toCompletion(tc.res))
		})
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient(context.Background(), "", "", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is required")
}
