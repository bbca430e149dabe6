package cmd

import (
	"github.com/bnema/clipgen-cli/internal/adapters/tui"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newUICmd(app *app) *cobra.Command {
	var route string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive studio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.studio.Router.Navigate(route)
			return tui.Run(cmd.Context(), app.studio, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&route, "route", domain.PathGenerate, "Screen to open after login")
	return cmd
}
