package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/kugyai/kugy-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Send one chat message (1 credit)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")

			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Thinking...", func(ctx context.Context) error {
				return app.chat.Send(ctx, message)
			})
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), app.chat.Response()); err != nil {
				return err
			}
			return writeBalance(cmd, app)
		},
	}
}

func newHistoryCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent chat turns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := app.gateway.ChatHistory(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(window.Records) == 0 {
				_, err := fmt.Fprintln(out, "No chat history.")
				return err
			}

			for _, record := range window.Records {
				if _, err := fmt.Fprintf(out, "Q: %s\nA: %s\n%s\n\n", record.Question, record.Answer, record.CreatedAt); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(out, "%d of %d stored turns\n", len(window.Records), window.Total)
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of turns to fetch")

	return cmd
}

// writeBalance reports the server's last-reported balance. When the response
// omitted credits_remaining there is no prior value in a one-shot process, so
// the read-only credits endpoint fills the gap.
func writeBalance(cmd *cobra.Command, app *app) error {
	session := app.controller.Session()
	credits := session.Credits
	if session.State == domain.SessionUnresolved && credits == domain.AnonymousCredits {
		balance, err := app.gateway.CreditBalance(cmd.Context())
		if err != nil {
			return nil
		}
		credits = balance.Credits
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Credits remaining: %s\n", credits)
	return err
}
