package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newAgentCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "agent <task>",
		Short: "Fan a task out across the multi-agent system (5 credits)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := strings.Join(args, " ")

			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Coordinating agents...", func(ctx context.Context) error {
				return app.agents.Submit(ctx, task)
			})
			if err != nil {
				return err
			}

			result := app.agents.Result()
			if result == nil {
				return nil
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "%s\n", result.FinalAnswer); err != nil {
				return err
			}

			// Stable order for display; the server returns an unordered map.
			keys := make([]string, 0, len(result.Agents))
			for key := range result.Agents {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				agent := result.Agents[key]
				if _, err := fmt.Fprintf(out, "\n[%s] %s (%s)\n%s\n", key, agent.AgentName, agent.Role, agent.Result); err != nil {
					return err
				}
			}

			if len(result.ModelsUsed) > 0 {
				if _, err := fmt.Fprintf(out, "\nModels used: %s\n", strings.Join(result.ModelsUsed, ", ")); err != nil {
					return err
				}
			}

			return writeBalance(cmd, app)
		},
	}
}
