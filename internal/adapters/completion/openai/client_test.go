package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/social-agent-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return Client{
		BaseURL:        server.URL + "/v1",
		APIKey:         "sk-test",
		Model:          "grok-beta",
		Temperature:    1,
		HTTPClient:     server.Client(),
		RequestTimeout: 2 * time.Second,
	}
}

func TestCompleteSendsPromptsAndReturnsText(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "grok-beta", req.Model)
		assert.InDelta(t, 1.0, req.Temperature, 0.0001)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, chatMessage{Role: "system", Content: "You are Marv."}, req.Messages[0])
		assert.Equal(t, chatMessage{Role: "user", Content: "say hi"}, req.Messages[1])

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  hi.  "},"finish_reason":"stop"}]}`))
	})

	got, err := client.Complete(context.Background(), "You are Marv.", "say hi")
	require.NoError(t, err)
	assert.Equal(t, ports.Completion{Text: "hi."}, got)
}

func TestCompleteReportsRefusal(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":null,"refusal":"I can't help with that."}}]}`))
	})

	got, err := client.Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.True(t, got.Refused)
	assert.Equal(t, "I can't help with that.", got.Refusal)
	assert.Empty(t, got.Text)
}

func TestCompleteWithoutChoicesIsEmpty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	got, err := client.Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, ports.Completion{}, got)
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	})

	_, err := client.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401: Incorrect API key provided")
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := Client{}.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is required")
}

func TestCompleteRejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := Client{BaseURL: "ftp://api.example.com", APIKey: "k"}.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")
}
