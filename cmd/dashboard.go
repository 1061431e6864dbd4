package cmd

import (
	"github.com/kugyai/kugy-cli/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dashboard.Run(cmd.Context(), dashboard.Deps{
				Controller: app.controller,
				Chat:       app.chat,
				Agents:     app.agents,
				Image:      app.image,
				Gateway:    app.gateway,
				BindAuthLost: func(notify func()) {
					clearStored := app.authLost
					app.authLost = func() {
						clearStored()
						notify()
					}
				},
			})
		},
	}
}
