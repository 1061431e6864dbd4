package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Aliases: []string{"status"},
		Short:   "Show the current session and credit balance",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.controller.Resolve(cmd.Context())
			if !session.Authenticated() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Not signed in. Run `kugy login guest` or `kugy login google`.")
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\nCredits: %s\n",
				session.Identity.Name, session.Identity.Email, session.Credits)
			return err
		},
	}
}
