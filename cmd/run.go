package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/social-agent-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var dryRun bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the agent once: mentions, one tracked user, one topical post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := app.runner(cmd.Context(), dryRun)
			if err != nil {
				return err
			}

			report, runErr := runner.Run(cmd.Context())
			if err := writeRunReport(cmd.OutOrStdout(), report, asJSON); err != nil {
				return err
			}

			return runErr
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate posts but do not publish them or update history")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeRunReport(out io.Writer, report domain.RunReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	parts := []string{fmt.Sprintf("mentions answered %d/%d", report.MentionsAnswered, report.MentionsSeen)}
	if report.TrackedUser != "" {
		parts = append(parts, fmt.Sprintf("replied %d to @%s", report.TrackedReplies, report.TrackedUser))
	} else {
		parts = append(parts, fmt.Sprintf("no tracked reply after %d attempts", report.TrackedAttempts))
	}
	switch {
	case report.TopicalPosted:
		parts = append(parts, fmt.Sprintf("posted on %q", report.Topic))
	case report.DryRun && report.Topic != "":
		parts = append(parts, fmt.Sprintf("drafted on %q", report.Topic))
	default:
		parts = append(parts, "no topical post")
	}

	prefix := "run"
	if report.DryRun {
		prefix = "dry run"
	}
	if _, err := fmt.Fprintf(out, "%s %s: %s\n", prefix, report.RunID, strings.Join(parts, ", ")); err != nil {
		return err
	}

	if report.DryRun {
		for _, draft := range report.Drafts {
			target := "new post"
			if draft.InReplyToID != "" {
				target = "reply to " + draft.InReplyToID
			}
			if _, err := fmt.Fprintf(out, "  would post (%s): %s\n", target, draft.Text); err != nil {
				return err
			}
		}
	}

	return nil
}
