package cmd

import (
	"fmt"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			current, err := app.store.Theme(ctx)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), current)
				return err
			}

			next := current.Toggle()
			if args[0] != "toggle" {
				next, err = domain.ParseTheme(args[0])
				if err != nil {
					return err
				}
			}

			if err := app.studio.Shell.SetTheme(ctx, next); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", next)
			return err
		},
	}
}
