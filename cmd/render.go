package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramanasai/habitcal/internal/render"
	"github.com/ramanasai/habitcal/internal/store"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		theme  string
		output string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the calendar PNG to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.theme
			if cmd.Flags().Changed("theme") {
				var err error
				if t, err = render.ParseTheme(theme); err != nil {
					return err
				}
			}
			log, err := a.store.Load()
			if err != nil {
				return err
			}
			img := a.layout.Image(log, a.now(), t)

			f, err := os.Create(output)
			if err != nil {
				return &store.WriteError{Path: output, Err: err}
			}
			w := bufio.NewWriter(f)
			if err := render.EncodePNG(w, img); err != nil {
				_ = f.Close()
				return err
			}
			if err := w.Flush(); err != nil {
				_ = f.Close()
				return &store.WriteError{Path: output, Err: err}
			}
			if err := f.Close(); err != nil {
				return &store.WriteError{Path: output, Err: err}
			}
			b := img.Bounds()
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d, %s)\n", output, b.Dx(), b.Dy(), t)
			return nil
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "light or dark (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "calendar.png", "output file")
	return cmd
}
