package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/clipgen-cli/internal/adapters/render/screen"
	"github.com/bnema/clipgen-cli/internal/application"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)

			addr, err := p.value(email, "Email")
			if err != nil {
				return err
			}
			password, err := readSecret(p, passwordStdin, "Password")
			if err != nil {
				return err
			}

			login := application.LoginCommand{Email: addr, Password: password}
			err = runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Logging in...", func(ctx context.Context) error {
				return app.studio.Shell.Login(ctx, login)
			})
			if err != nil {
				return err
			}

			return writeWelcome(cmd, app)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	return cmd
}

func newSignupCmd(app *app) *cobra.Command {
	var name string
	var email string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)

			fullName, err := p.value(name, "Name")
			if err != nil {
				return err
			}
			addr, err := p.value(email, "Email")
			if err != nil {
				return err
			}
			password, err := readSecret(p, passwordStdin, "Password")
			if err != nil {
				return err
			}

			signup := application.SignupCommand{Name: fullName, Email: addr, Password: password}
			err = runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Creating account...", func(ctx context.Context) error {
				return app.studio.Shell.Signup(ctx, signup)
			})
			if err != nil {
				return err
			}

			return writeWelcome(cmd, app)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.studio.Shell.Logout(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			return app.write(cmd.OutOrStdout(), screen.AccountPage{Snapshot: app.studio.Shell.Snapshot()}, false)
		},
	}
}

func newCreditsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "credits",
		Short: "Print the credit balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			if app.bootErr != nil {
				return app.bootErr
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.studio.Shell.Snapshot().Credits.String())
			return err
		},
	}
}

// readSecret takes the first stdin line with --password-stdin, otherwise
// prompts.
func readSecret(p *prompter, fromStdin bool, label string) (string, error) {
	if fromStdin {
		return p.line("")
	}
	return p.password(label)
}

func writeWelcome(cmd *cobra.Command, app *app) error {
	snapshot := app.studio.Shell.Snapshot()
	if !snapshot.Authenticated() {
		return errLoginRequired
	}
	name := snapshot.User.Email
	if snapshot.User.Name != "" {
		name = snapshot.User.Name
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s).\n", name, snapshot.Credits)
	return err
}
