package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/habitcal/internal/generator"
	"github.com/ramanasai/habitcal/internal/habit"
	"github.com/ramanasai/habitcal/internal/ui"
)

func newGenerateCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic record for today if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st := ui.NewStyles(a.layout.Config, a.theme)
			today := a.now()
			key := habit.Key(today)

			if dryRun {
				model := generator.DefaultModel()
				probs := model.Probabilities(today)
				fmt.Fprintln(out, st.Title.Render("Probabilities for "+key))
				for _, h := range model.Habits() {
					fmt.Fprintf(out, "  %s %s\n", st.Label.Render(fmt.Sprintf("%-9s", h)), st.Value.Render(fmt.Sprintf("%.3f", probs[h])))
				}
				return nil
			}

			rec, err := a.generate(today)
			if err != nil {
				return err
			}
			if rec == nil {
				fmt.Fprintln(out, st.Hint.Render(fmt.Sprintf("Habit data for %s already exists, skipping update", key)))
				return nil
			}
			fmt.Fprintf(out, "%s %d of %d habits completed\n",
				st.Success.Render("Updated habit data for "+key+":"), rec.Completed(), len(rec))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print today's probabilities without writing")
	return cmd
}
