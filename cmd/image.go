package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kugyai/kugy-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newImageCmd(app *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "image <prompt>",
		Short: "Generate an image from a prompt (3 credits)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")

			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Generating image...", func(ctx context.Context) error {
				return app.image.Generate(ctx, prompt)
			})
			if err != nil {
				return err
			}

			image := app.image.Image()
			if image == nil {
				return nil
			}

			data, err := image.Decode()
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write image file: %w", err)
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", len(data), outPath); err != nil {
				return err
			}
			return writeBalance(cmd, app)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", domain.DefaultImageFilename, "Output file for the generated PNG")

	return cmd
}
