package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentConfigValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, AgentConfig{Handle: "marv"}.Validate())
	assert.ErrorIs(t, AgentConfig{Handle: "  "}.Validate(), ErrHandleRequired)
}

func TestSetUserIDCachesOnMatchingEntries(t *testing.T) {
	t.Parallel()

	users := []TrackedUser{{Username: "alice"}, {Username: "Bob"}}

	require.True(t, SetUserID(users, "bob", "42"))
	assert.Equal(t, []TrackedUser{{Username: "alice"}, {Username: "Bob", ID: "42"}}, users)

	assert.False(t, SetUserID(users, "carol", "7"))
}

func TestNormalizeUsername(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "alice", NormalizeUsername("  @alice "))
	assert.Equal(t, "bob", NormalizeUsername("bob"))
}

func TestParseFailurePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    FailurePolicy
		wantErr string
	}{
		{name: "empty defaults to fatal", raw: "", want: FailurePolicyFatal},
		{name: "fatal", raw: "fatal", want: FailurePolicyFatal},
		{name: "skip is case insensitive", raw: " SKIP ", want: FailurePolicySkip},
		{name: "unknown", raw: "retry", wantErr: "unsupported failure policy"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFailurePolicy(tc.raw)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRunReportAddSoftFailureIgnoresNil(t *testing.T) {
	t.Parallel()

	var report RunReport
	report.AddSoftFailure(nil)
	report.AddSoftFailure(ErrNoEligibleContent)

	assert.Equal(t, []string{"no eligible content found"}, report.SoftFailures)
}
