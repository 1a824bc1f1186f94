package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/habitcal/internal/calendar"
	"github.com/ramanasai/habitcal/internal/ui"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the heatmap and a summary to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := a.store.Load()
			if err != nil {
				return err
			}
			today := a.now()
			st := ui.NewStyles(a.layout.Config, a.theme)
			g := calendar.BuildGrid(log, today, a.layout.Config.Weeks, a.layout.Config.Days)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, ui.Heatmap(g, st))
			fmt.Fprintln(out)
			fmt.Fprint(out, ui.Summary(log, today, a.cfg.Rows.Habits, a.cfg.Rows.Days, st))
			return nil
		},
	}
}
