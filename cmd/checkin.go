package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ramanasai/habitcal/internal/habit"
	"github.com/ramanasai/habitcal/internal/ui"
	"github.com/ramanasai/habitcal/internal/utils"
)

func newCheckinCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Tick off today's habits interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := utils.ParseDay(date, a.now())
			if err != nil {
				return err
			}
			log, err := a.store.Load()
			if err != nil {
				return err
			}

			save := func(d time.Time, rec habit.DayRecord) error {
				current, err := a.store.Load()
				if err != nil {
					return err
				}
				current[habit.Key(d)] = rec
				return a.store.Save(current)
			}
			m := ui.NewCheckin(day, a.cfg.Rows.Habits, log.Day(day), save, ui.NewStyles(a.layout.Config, a.theme))

			p := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			done := final.(ui.Checkin)
			if done.Saved() {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %d of %d habits for %s\n",
					done.Record().Completed(), len(done.Record()), habit.Key(day))
			}
			return done.Err()
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "today", "day to check in: today, yesterday, YYYY-MM-DD or \"N days ago\"")
	return cmd
}
