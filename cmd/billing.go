package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/clipgen-cli/internal/adapters/render/screen"
	"github.com/spf13/cobra"
)

func newBillingCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Show credit packs, balance and purchase history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if _, err := app.studio.Billing.LoadHistory(cmd.Context()); err != nil {
				return err
			}
			return app.write(cmd.OutOrStdout(), screen.BillingPage{View: app.studio.Billing.View()}, false)
		},
	}

	cmd.AddCommand(newBillingTiersCmd(app), newBillingBuyCmd(app), newBillingHistoryCmd(app))
	return cmd
}

func newBillingTiersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the credit packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.write(cmd.OutOrStdout(), screen.TiersPage{Tiers: app.studio.Billing.Tiers()}, false)
		},
	}
}

func newBillingBuyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "buy <starter|creator|pro>",
		Short:     "Buy a credit pack",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"starter", "creator", "pro"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Checking out...", func(ctx context.Context) error {
				_, err := app.studio.Billing.Buy(ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.studio.Billing.View().Notice.Text)
			return err
		},
	}
}

func newBillingHistoryCmd(app *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past purchases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			history, err := app.studio.Billing.LoadHistory(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, history)
			}
			return app.write(cmd.OutOrStdout(), screen.BillingPage{View: app.studio.Billing.View()}, false)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print purchases as JSON")
	return cmd
}
