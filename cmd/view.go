package cmd

import (
	"context"
	"errors"

	"github.com/bnema/clipgen-cli/internal/adapters/render/screen"
	"github.com/bnema/clipgen-cli/internal/application"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard with credits and recent creations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderRoute(cmd, app, domain.PathDashboard)
		},
	}
}

func newViewCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view [path]",
		Short: "Render one screen inside the app layout",
		Long:  "Render the screen for a route (/, /library, /billing, /settings, /dashboard) inside the app layout. Unknown routes show the dashboard; without a session the login screen is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := domain.PathGenerate
			if len(args) == 1 {
				path = args[0]
			}
			return renderRoute(cmd, app, path)
		},
	}
}

// renderRoute navigates to path, loads that screen's data and writes it
// framed. Logged out users get the login screen instead.
func renderRoute(cmd *cobra.Command, app *app, path string) error {
	ctx := cmd.Context()
	studio := app.studio

	if err := app.requireSession(ctx); err != nil {
		if errors.Is(err, errLoginRequired) || errors.Is(err, domain.ErrAuth) {
			page := screen.AuthPage{View: screen.AuthView{Notice: loggedOutNotice(err)}}
			return app.write(cmd.OutOrStdout(), page, true)
		}
		return err
	}

	page, err := loadScreen(ctx, app, studio.Router.Navigate(path))
	if err != nil {
		return err
	}
	return app.write(cmd.OutOrStdout(), page, true)
}

func loadScreen(ctx context.Context, app *app, current domain.Screen) (screen.Page, error) {
	studio := app.studio

	switch current {
	case domain.ScreenGenerate:
		return screen.GeneratePage{View: studio.Generate.View()}, nil
	case domain.ScreenLibrary:
		if _, err := studio.Library.Load(ctx); err != nil {
			return nil, err
		}
		return screen.LibraryPage{View: studio.Library.View()}, nil
	case domain.ScreenBilling:
		if _, err := studio.Billing.LoadHistory(ctx); err != nil {
			return nil, err
		}
		return screen.BillingPage{View: studio.Billing.View()}, nil
	case domain.ScreenSettings:
		return screen.SettingsPage{View: studio.Settings.View()}, nil
	default:
		// The dashboard renders partial data with its own notice.
		if _, err := studio.Dashboard.Load(ctx); err != nil {
			if errors.Is(err, domain.ErrAuth) {
				return nil, err
			}
			app.logger.Warn("load dashboard", zap.Error(err))
		}
		return screen.DashboardPage{View: studio.Dashboard.View()}, nil
	}
}

func loggedOutNotice(err error) application.Notice {
	if errors.Is(err, errLoginRequired) {
		return application.Notice{}
	}
	return application.ErrorNotice(err)
}
