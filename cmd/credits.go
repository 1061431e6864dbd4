package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCreditsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "credits",
		Short: "Show the server-reported credit balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			balance, err := app.gateway.CreditBalance(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Credits: %s\n", balance.Credits)
			return err
		},
	}
}
