package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:           "clipgen",
		Short:         "ClipGen Studio CLI: generate clipart from the terminal",
		Long:          "clipgen is a terminal client for ClipGen Studio. Log in, generate clipart from a prompt, keep a library of saved images, buy credits and manage your account.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configFile, "config", "", "Config file (default ~/.config/clipgen/config.toml)")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")
	flags.String("api-url", "", "Backend base URL")
	flags.String("state", "", "State file path")
	app.bindFlag(configAPIBaseURL, flags.Lookup("api-url"))
	app.bindFlag(configStatePath, flags.Lookup("state"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newCreditsCmd(app),
		newGenerateCmd(app),
		newLibraryCmd(app),
		newBillingCmd(app),
		newSettingsCmd(app),
		newThemeCmd(app),
		newDashboardCmd(app),
		newViewCmd(app),
		newUICmd(app),
	)

	return rootCmd
}
