package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/clipgen-cli/internal/adapters/render/screen"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	"github.com/spf13/cobra"
)

func newLibraryCmd(app *app) *cobra.Command {
	var jsonOutput bool

	list := func(cmd *cobra.Command, _ []string) error {
		if err := loadLibrary(cmd, app); err != nil {
			return err
		}

		view := app.studio.Library.View()
		if jsonOutput {
			return writeJSON(cmd, view.Items)
		}
		return app.write(cmd.OutOrStdout(), screen.LibraryPage{View: view}, false)
	}

	cmd := &cobra.Command{
		Use:     "library",
		Aliases: []string{"lib"},
		Short:   "List and manage saved images",
		Args:    cobra.NoArgs,
		RunE:    list,
	}

	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print items as JSON")
	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List saved images",
			Args:    cobra.NoArgs,
			RunE:    list,
		},
		newLibraryShowCmd(app),
		newLibrarySaveCmd(app),
		newLibraryDeleteCmd(app),
		newLibraryDownloadCmd(app),
	)
	return cmd
}

func newLibraryShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadLibrary(cmd, app); err != nil {
				return err
			}
			if _, err := app.studio.Library.Open(domain.LibraryItemID(args[0])); err != nil {
				return err
			}
			return app.write(cmd.OutOrStdout(), screen.LibraryPage{View: app.studio.Library.View()}, false)
		},
	}
}

func newLibrarySaveCmd(app *app) *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "save <image-url>",
		Short: "Save an image URL to the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if err := app.studio.Library.Save(cmd.Context(), prompt, args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Saved to library.")
			return err
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Prompt the image was generated from")
	return cmd
}

func newLibraryDeleteCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadLibrary(cmd, app); err != nil {
				return err
			}

			var confirmer ports.Confirmer = newPrompter(cmd)
			if yes {
				confirmer = ports.Confirmed
			}

			id := domain.LibraryItemID(args[0])
			err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Deleting...", func(ctx context.Context) error {
				return app.studio.Library.Delete(ctx, id, confirmer)
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", id)
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newLibraryDownloadCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a saved image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadLibrary(cmd, app); err != nil {
				return err
			}

			id := domain.LibraryItemID(args[0])
			item, err := app.studio.Library.Open(id)
			if err != nil {
				return err
			}
			if output == "" {
				output = defaultDownloadName(item)
			}

			err = downloadTo(output, func(f *os.File) (int64, error) {
				return app.studio.Library.Download(cmd.Context(), id, f)
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %s to %s.\n", id, output)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default <id>.<format>)")
	return cmd
}

// defaultDownloadName builds "<id>.<format>" as a bare file name, whatever
// the backend put in the id.
func defaultDownloadName(item domain.LibraryItem) string {
	format := filepath.Base(item.Format)
	if item.Format == "" || format == "." || format == ".." || format == string(filepath.Separator) {
		format = domain.DefaultImageFormat
	}

	name := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(string(item.ID), "\\", "/")))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		name = "image"
	}
	return name + "." + format
}

func loadLibrary(cmd *cobra.Command, app *app) error {
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}
	_, err := app.studio.Library.Load(cmd.Context())
	return err
}

func writeJSON(cmd *cobra.Command, payload any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
