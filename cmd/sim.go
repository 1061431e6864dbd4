package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kugyai/kugy-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSimCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "VirtuSim SMS-verification marketplace passthrough",
	}

	cmd.AddCommand(
		newSimBalanceCmd(app),
		newSimServicesCmd(app),
		newSimOrderCmd(app),
		newSimActiveCmd(app),
	)

	return cmd
}

func newSimBalanceCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the VirtuSim account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.gateway.SimBalance(cmd.Context())
			if err != nil {
				return err
			}
			return writeSimResult(cmd, result)
		},
	}
}

func newSimServicesCmd(app *app) *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List available verification services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.gateway.SimServices(cmd.Context(), country)
			if err != nil {
				return err
			}
			return writeSimResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&country, "country", "indonesia", "Country to list services for")

	return cmd
}

func newSimOrderCmd(app *app) *cobra.Command {
	var operator string

	cmd := &cobra.Command{
		Use:   "order <service>",
		Short: "Order a verification number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.gateway.SimCreateOrder(cmd.Context(), args[0], operator)
			if err != nil {
				return err
			}
			return writeSimResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "any", "Preferred network operator")

	return cmd
}

func newSimActiveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List active orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.gateway.SimActiveOrders(cmd.Context())
			if err != nil {
				return err
			}
			return writeSimResult(cmd, result)
		},
	}
}

// writeSimResult pretty-prints the provider payload without interpreting it.
func writeSimResult(cmd *cobra.Command, result domain.SimResult) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, result.Raw, "", "  "); err != nil {
		_, writeErr := fmt.Fprintln(cmd.OutOrStdout(), string(result.Raw))
		return writeErr
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
	return err
}
