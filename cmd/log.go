package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/habitcal/internal/habit"
	"github.com/ramanasai/habitcal/internal/utils"
)

func newLogCmd(a *app) *cobra.Command {
	var (
		date string
		undo bool
	)
	cmd := &cobra.Command{
		Use:   "log <habit>...",
		Short: "Mark habits as done for a day",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := utils.ParseDay(date, a.now())
			if err != nil {
				return err
			}
			log, err := a.store.Load()
			if err != nil {
				return err
			}

			key := habit.Key(day)
			rec := log[key]
			if rec == nil {
				rec = habit.DayRecord{}
				log[key] = rec
			}
			var names []string
			for _, h := range args {
				if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
					rec[h] = !undo
					names = append(names, h)
				}
			}
			if err := a.store.Save(log); err != nil {
				return err
			}

			verb := "done"
			if undo {
				verb = "not done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved. %s marked %s for %s\n", strings.Join(names, ", "), verb, key)
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "today", "day to update: today, yesterday, YYYY-MM-DD or \"N days ago\"")
	cmd.Flags().BoolVar(&undo, "undo", false, "mark the habits as not done")
	return cmd
}
