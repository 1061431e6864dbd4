package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kugy",
		Short:         "Kugy AI dashboard client: chat, multi-agent tasks, images, credits",
		Long:          "kugy is a terminal client for the Kugy AI platform. It signs you in (guest or Google), shows your credit balance, and drives the platform's chat, multi-agent, image generation and VirtuSim features.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.restoreSession(cmd.Context())
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		return app.persistSession(cmd.Context())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newChatCmd(app),
		newHistoryCmd(app),
		newAgentCmd(app),
		newImageCmd(app),
		newCreditsCmd(app),
		newSimCmd(app),
		newHealthCmd(app),
		newDashboardCmd(app),
	)

	return rootCmd
}
