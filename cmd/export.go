package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/habitcal/internal/db"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <out.db>",
		Short: "Export the habit log to a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := a.store.Load()
			if err != nil {
				return err
			}
			dbh, err := db.Open(args[0])
			if err != nil {
				return err
			}
			defer dbh.Close()

			ctx := background(cmd)
			n, err := db.Replace(ctx, dbh, log)
			if err != nil {
				return err
			}
			totals, err := db.HabitTotals(ctx, dbh)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Exported %d rows from %d days to %s\n", n, len(log), args[0])
			for _, t := range totals {
				fmt.Fprintf(out, "  %-10s %4d/%-4d %5.1f%%\n", t.Habit, t.Done, t.Days, t.Rate()*100)
			}
			return nil
		},
	}
}
