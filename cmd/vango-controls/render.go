package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/controls/internal/errors"
	"github.com/vango-dev/controls/internal/gallery"
)

func renderCmd(a *app) *cobra.Command {
	var (
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the gallery as static HTML",
		Long: `Render the gallery page once and write it as a standalone HTML
document with the stylesheet inlined.

Examples:
  vango-controls render
  vango-controls render -o gallery.html
  vango-controls render --title="Controls"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if title != "" {
				a.cfg.Gallery.Title = title
			}
			if output == "" || output == "-" {
				return runRender(cmd.Context(), a, cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return errors.New("R201").Wrap(err)
			}
			defer f.Close()
			if err := runRender(cmd.Context(), a, f); err != nil {
				return err
			}
			success("Rendered %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&title, "title", "", "Page title (default from controls.yaml)")

	return cmd
}

func runRender(ctx context.Context, a *app, w io.Writer) error {
	page, err := gallery.Render(ctx, a.cfg.Gallery.Title)
	if err != nil {
		return errors.New("R201").Wrap(err)
	}
	if _, err := w.Write(page); err != nil {
		return errors.New("R201").Wrap(err)
	}
	a.logger.Debug("gallery rendered", "bytes", len(page))
	return nil
}
