package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/social-agent-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsVersion(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCLI(t, dir, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestUsersAddListRemove(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCLI(t, dir, "users", "add", "@alice", "bob")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tracking @alice")
	assert.Contains(t, stdout, "tracking @bob")

	stdout, _, err = executeCLI(t, dir, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "@alice\t(unresolved)")
	assert.Contains(t, stdout, "@bob\t(unresolved)")

	_, _, err = executeCLI(t, dir, "users", "remove", "alice")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"username":"bob"}]`, string(data))

	_, _, err = executeCLI(t, dir, "users", "remove", "carol")
	require.ErrorIs(t, err, domain.ErrTrackedUserNotFound)
}

func TestStatusRendersAgentSummary(t *testing.T) {
	dir := t.TempDir()
	writeAgentFixture(t, dir)

	stdout, _, err := executeCLI(t, dir, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "@marv (a1)")
	assert.Contains(t, stdout, "coffee")
	assert.Contains(t, stdout, "1/2 ids resolved")
	assert.Contains(t, stdout, "2 posts, 1 by agent")
}

func TestStatusJSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeAgentFixture(t, dir)

	stdout, _, err := executeCLI(t, dir, "status", "--json")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, "marv", payload["handle"])
	assert.EqualValues(t, 2, payload["tracked_users"])
	assert.EqualValues(t, 1, payload["agent_posts"])
}

func TestHistoryListShowsNewestEntries(t *testing.T) {
	dir := t.TempDir()
	writeAgentFixture(t, dir)

	stdout, _, err := executeCLI(t, dir, "history", "list", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "r1  @marv -> m1  go away")
	assert.NotContains(t, stdout, "m1  @alice")
}

func TestConfigInitThenShow(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCLI(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "config.toml")

	_, _, err = executeCLI(t, dir, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	stdout, _, err = executeCLI(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[run]")
	assert.Contains(t, stdout, "provider = 'openai'")
	assert.Contains(t, stdout, "topical_failure = 'fatal'")
}

func TestRunRequiresCredentials(t *testing.T) {
	dir := t.TempDir()
	writeAgentFixture(t, dir)
	t.Setenv("CONSUMER_KEY", "")

	_, _, err := executeCLI(t, dir, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONSUMER_KEY")
}

func TestRunDryRunDoesNotPublish(t *testing.T) {
	dir := t.TempDir()
	writeAgentFixture(t, dir)
	api := newFakeAPI(t)
	api.configure(t)
	historyBefore, err := os.ReadFile(filepath.Join(dir, "tweet-history.json"))
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, dir, "run", "--dry-run", "--json")
	require.NoError(t, err)

	var report domain.RunReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.MentionsAnswered)
	assert.Equal(t, "coffee", report.Topic)
	assert.Len(t, report.Drafts, 2)
	assert.Zero(t, api.publishCount())

	historyAfter, err := os.ReadFile(filepath.Join(dir, "tweet-history.json"))
	require.NoError(t, err)
	assert.Equal(t, string(historyBefore), string(historyAfter))
}

func TestRunPublishesAndRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	writeAgentFixture(t, dir)
	api := newFakeAPI(t)
	api.configure(t)

	stdout, _, err := executeCLI(t, dir, "run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "mentions answered 1/1")
	assert.Contains(t, stdout, `posted on "coffee"`)
	assert.Equal(t, 2, api.publishCount())

	data, err := os.ReadFile(filepath.Join(dir, "tweet-history.json"))
	require.NoError(t, err)

	var history struct {
		Tweets []struct {
			ID          string `json:"id"`
			AuthorID    string `json:"author_id"`
			InReplyToID string `json:"in_reply_to_id"`
		} `json:"tweets"`
	}
	require.NoError(t, json.Unmarshal(data, &history))
	require.Len(t, history.Tweets, 4)
	assert.Equal(t, "m2", history.Tweets[2].InReplyToID)
	assert.Equal(t, "a1", history.Tweets[2].AuthorID)
	assert.Empty(t, history.Tweets[3].InReplyToID)

	_, _, err = executeCLI(t, dir, "run", "--json")
	require.NoError(t, err)
	assert.Equal(t, 3, api.publishCount(), "the answered mention is not answered again")
}

func TestUsersResolveCachesIDs(t *testing.T) {
	dir := t.TempDir()
	writeAgentFixture(t, dir)
	api := newFakeAPI(t)
	api.configure(t)

	stdout, _, err := executeCLI(t, dir, "users", "resolve", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"username": "bob"`)
	assert.Contains(t, stdout, `"id": "u-bob"`)

	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"username":"alice","id":"u-alice"},{"username":"bob","id":"u-bob"}]`, string(data))
}

func TestUsersResolveShowsSpinnerMessage(t *testing.T) {
	dir := t.TempDir()
	writeAgentFixture(t, dir)
	api := newFakeAPI(t)
	api.configure(t)

	stdout, stderr, err := executeCLI(t, dir, "users", "resolve")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Resolving tracked users...")
	assert.Contains(t, stdout, "@alice\tu-alice (cached)")
}

type fakeAPI struct {
	server *httptest.Server

	mu        sync.Mutex
	published int
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /2/users/a1/mentions", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "OAuth "))
		_, _ = w.Write([]byte(`{"data":[{"id":"m2","text":"@marv how are you","author_id":"u2"}],"includes":{"users":[{"id":"u2","username":"carol"}]}}`))
	})
	mux.HandleFunc("GET /2/users/by/username/{username}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":"u-` + r.PathValue("username") + `","username":"` + r.PathValue("username") + `"}}`))
	})
	mux.HandleFunc("GET /2/users/{id}/tweets", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"t1","text":"short"}]}`))
	})
	mux.HandleFunc("POST /2/tweets", func(w http.ResponseWriter, _ *http.Request) {
		api.mu.Lock()
		api.published++
		id := "p" + string(rune('0'+api.published))
		api.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"` + id + `","text":"hello"}}`))
	})
	mux.HandleFunc("POST /v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	})

	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)

	return api
}

func (a *fakeAPI) configure(t *testing.T) {
	t.Helper()

	t.Setenv("CONSUMER_KEY", "ck")
	t.Setenv("CONSUMER_SECRET", "cs")
	t.Setenv("ACCESS_TOKEN", "at")
	t.Setenv("ACCESS_SECRET_TOKEN", "as")
	t.Setenv("BEARER_TOKEN", "bt")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SAGENT_SOCIAL_BASE_URL", a.server.URL)
	t.Setenv("SAGENT_COMPLETION_BASE_URL", a.server.URL+"/v1")
}

func (a *fakeAPI) publishCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.published
}

func writeAgentFixture(t *testing.T, dir string) {
	t.Helper()

	files := map[string]string{
		"agentConfig.json": `{
  "agentHandle": "marv",
  "agentSystemPrompt": "You are Marv.",
  "agentTweetTopics": ["coffee"],
  "agentUserId": "a1"
}`,
		"users.json": `[{"username": "alice", "id": "u-alice"}, {"username": "bob"}]`,
		"tweet-history.json": `{"tweets": [
  {"id": "m1", "text": "hey", "author_id": "u2", "author_username": "alice"},
  {"id": "r1", "text": "go away", "author_id": "a1", "author_username": "marv", "in_reply_to_id": "m1", "created_at": "2026-10-14T09:00:00Z"}
]}`,
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
}

func executeCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	for _, name := range []string{"CONSUMER_KEY", "CONSUMER_SECRET", "ACCESS_TOKEN", "ACCESS_SECRET_TOKEN", "BEARER_TOKEN", "OPENAI_API_KEY"} {
		if _, ok := os.LookupEnv(name); !ok {
			t.Setenv(name, "")
		}
	}
	t.Setenv("SAGENT_LOG_LEVEL", "error")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config-dir", dir}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
