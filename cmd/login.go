package cmd

import (
	"context"
	"fmt"

	"github.com/kugyai/kugy-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the platform",
	}

	cmd.AddCommand(newLoginGuestCmd(app), newLoginGoogleCmd(app))

	return cmd
}

func newLoginGuestCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "guest",
		Short: fmt.Sprintf("Create an ephemeral guest session (%d starting credits)", domain.GuestCreditGrant),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var session domain.Session
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Creating guest session...", func(ctx context.Context) error {
				var loginErr error
				session, loginErr = app.controller.GuestLogin(ctx)
				return loginErr
			})
			if err != nil {
				return err
			}

			name := ""
			if session.Identity != nil {
				name = session.Identity.Name
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s with %s credits.\n", name, session.Credits)
			return err
		},
	}
}

func newLoginGoogleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "google",
		Short: "Print the Google sign-in URL to open in a browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"Open this URL in your browser to sign in with Google:\n%s\n\nOnce signed in, run `kugy whoami` to confirm the session.\n",
				app.gateway.GoogleLoginURL())
			return err
		},
	}
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.controller.Logout(cmd.Context()); err != nil {
				return err
			}

			// Drop the credentials locally too; the server is not trusted
			// to send a deletion Set-Cookie with the logout response.
			app.client.ClearCookies()
			if err := app.store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear stored session: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return err
		},
	}
}
