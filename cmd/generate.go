package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/clipgen-cli/internal/adapters/render/screen"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *app) *cobra.Command {
	var prompt string
	var quick int
	var save bool
	var output string

	cmd := &cobra.Command{
		Use:   "generate [prompt]",
		Short: "Generate one clipart image from a prompt",
		Long:  "Generate spends one credit per image. Without a prompt the default prompt is used; --quick picks one of the suggested prompts.",
		Example: `  clipgen generate "kawaii robot"
  clipgen generate --quick 3 --save --output whale.jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			generator := app.studio.Generate
			text := prompt
			if len(args) > 0 {
				text = strings.Join(args, " ")
			}
			if quick > 0 {
				picked, err := generator.UseQuickPrompt(quick)
				if err != nil {
					return err
				}
				text = picked
			}
			if strings.TrimSpace(text) == "" {
				text = generator.View().Prompt
			}

			err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Generating...", func(ctx context.Context) error {
				_, err := generator.Generate(ctx, text)
				return err
			})
			if errors.Is(err, domain.ErrInsufficientCredits) {
				return fmt.Errorf("%w: buy a pack with `clipgen billing buy <starter|creator|pro>`", err)
			}
			if err != nil {
				return err
			}

			if save {
				if err := generator.Save(cmd.Context()); err != nil {
					return err
				}
			}
			if output != "" {
				if err := downloadTo(output, func(f *os.File) (int64, error) {
					return generator.Download(cmd.Context(), f)
				}); err != nil {
					return err
				}
			}

			return app.write(cmd.OutOrStdout(), screen.GeneratePage{View: generator.View()}, false)
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Prompt text")
	cmd.Flags().IntVar(&quick, "quick", 0, "Use quick prompt N (1-4)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the image to the library")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Download the image to this file")
	cmd.MarkFlagsMutuallyExclusive("prompt", "quick")
	return cmd
}

// downloadTo replaces path atomically through a temp file in the same
// directory.
func downloadTo(path string, fetch func(*os.File) (int64, error)) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := fetch(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
