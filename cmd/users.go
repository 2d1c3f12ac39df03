package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/social-agent-cli/internal/application"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the tracked user list",
	}

	cmd.AddCommand(
		newUsersListCmd(app),
		newUsersAddCmd(app),
		newUsersRemoveCmd(app),
		newUsersResolveCmd(app),
	)

	return cmd
}

func newUsersListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := application.NewUserService(app.stores.Users, nil).List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(users)
			}

			if len(users) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no tracked users")
				return err
			}

			for _, user := range users {
				id := user.ID
				if id == "" {
					id = "(unresolved)"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "@%s\t%s\n", user.Username, id); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newUsersAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <username>...",
		Short: "Track one or more users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := application.NewUserService(app.stores.Users, nil).Add(cmd.Context(), args...)
			if err != nil {
				return err
			}

			if len(added) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "already tracked")
				return err
			}

			for _, username := range added {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "tracking @%s\n", username); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newUsersRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <username>",
		Short: "Stop tracking a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.NewUserService(app.stores.Users, nil).Remove(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stopped tracking @%s\n", args[0])
			return err
		},
	}
}

func newUsersResolveCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Look up and cache the ids of tracked users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.userService(cmd.Context())
			if err != nil {
				return err
			}

			var results []application.ResolveResult
			resolve := func(ctx context.Context) error {
				var err error
				results, err = service.Resolve(ctx)
				return err
			}

			if asJSON {
				err = resolve(cmd.Context())
			} else {
				err = runResolveSpinner(cmd.Context(), cmd.ErrOrStderr(), resolve)
			}
			if err != nil {
				return err
			}

			return writeResolveResults(cmd.OutOrStdout(), results, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

type resolveResultJSON struct {
	Username string `json:"username"`
	ID       string `json:"id,omitempty"`
	Cached   bool   `json:"cached"`
	Error    string `json:"error,omitempty"`
}

func writeResolveResults(out io.Writer, results []application.ResolveResult, asJSON bool) error {
	if asJSON {
		rows := make([]resolveResultJSON, 0, len(results))
		for _, result := range results {
			row := resolveResultJSON{Username: result.Username, ID: result.ID, Cached: result.Cached}
			if result.Err != nil {
				row.Error = result.Err.Error()
			}
			rows = append(rows, row)
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	for _, result := range results {
		var line string
		switch {
		case result.Err != nil:
			line = fmt.Sprintf("@%s\tfailed: %v", result.Username, result.Err)
		case result.Cached:
			line = fmt.Sprintf("@%s\t%s (cached)", result.Username, result.ID)
		default:
			line = fmt.Sprintf("@%s\t%s", result.Username, result.ID)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}
