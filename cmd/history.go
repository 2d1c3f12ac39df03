package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the local post history",
	}

	cmd.AddCommand(newHistoryListCmd(app))

	return cmd
}

func newHistoryListCmd(app *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the newest history entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			posts, err := app.queries.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(posts)
			}

			if len(posts) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "history is empty")
				return err
			}

			for _, post := range posts {
				when := "-"
				if !post.CreatedAt.IsZero() {
					when = post.CreatedAt.Format(time.RFC3339)
				}

				line := fmt.Sprintf("%s  %s  @%s", when, post.ID, post.AuthorUsername)
				if post.InReplyToID != "" {
					line += " -> " + post.InReplyToID
				}
				line += "  " + strings.ReplaceAll(post.Text, "\n", " ")

				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
