package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/clipgen-cli/internal/adapters/render/screen"
	"github.com/bnema/clipgen-cli/internal/application"
	"github.com/bnema/clipgen-cli/internal/ports"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change account settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			return app.write(cmd.OutOrStdout(), screen.SettingsPage{View: app.studio.Settings.View()}, false)
		},
	}

	cmd.AddCommand(
		newSettingsEmailCmd(app),
		newSettingsPasswordCmd(app),
		newSettingsDeleteAccountCmd(app),
	)
	return cmd
}

func newSettingsEmailCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "email <address>",
		Short: "Change the account email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			user, err := app.studio.Settings.UpdateEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Email updated to %s.\n", user.Email)
			return err
		},
	}
}

func newSettingsPasswordCmd(app *app) *cobra.Command {
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change the account password",
		Long:  "Change the account password. With --password-stdin the current and the new password are read from the first two lines of stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			p := newPrompter(cmd)
			oldPassword, err := readSecret(p, passwordStdin, "Current password")
			if err != nil {
				return err
			}
			newPassword, err := readSecret(p, passwordStdin, "New password")
			if err != nil {
				return err
			}

			change := application.ChangePasswordCommand{OldPassword: oldPassword, NewPassword: newPassword}
			if err := app.studio.Settings.ChangePassword(cmd.Context(), change); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Password changed.")
			return err
		},
	}

	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read both passwords from stdin")
	return cmd
}

func newSettingsDeleteAccountCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete the account and every local trace of it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			var confirmer ports.Confirmer = newPrompter(cmd)
			if yes {
				confirmer = ports.Confirmed
			}

			err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Deleting account...", func(ctx context.Context) error {
				return app.studio.Settings.DeleteAccount(ctx, confirmer)
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Account deleted.")
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
