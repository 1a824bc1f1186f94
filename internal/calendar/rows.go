package calendar

import (
	"time"

	"github.com/ramanasai/habitcal/internal/habit"
)

// DefaultRowDays is the trailing window of the row layout.
const DefaultRowDays = 21

// DefaultHabits is the tracked habit list when none is configured.
var DefaultHabits = []string{"water", "journal", "meditate", "read", "exercise"}

// Rows is a per-habit completion series over a trailing window.
// Done[i][j] is whether Habits[i] was completed on Dates[j].
type Rows struct {
	Dates  []time.Time
	Habits []string
	Done   [][]bool
}

// BuildRows returns the last days days ending today for a fixed habit list.
// Habits present in the log but not in habits are ignored.
func BuildRows(log habit.Log, today time.Time, habits []string, days int) Rows {
	if days <= 0 {
		days = DefaultRowDays
	}
	today = habit.Midnight(today)

	r := Rows{
		Dates:  make([]time.Time, days),
		Habits: append([]string(nil), habits...),
		Done:   make([][]bool, len(habits)),
	}
	for j := range r.Dates {
		r.Dates[j] = today.AddDate(0, 0, j-(days-1))
	}
	for i, name := range habits {
		row := make([]bool, days)
		for j, date := range r.Dates {
			row[j] = log.Day(date).Done(name)
		}
		r.Done[i] = row
	}
	return r
}
