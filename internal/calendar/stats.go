package calendar

import (
	"time"

	"github.com/ramanasai/habitcal/internal/habit"
)

// Streak counts consecutive days with at least one completed habit, ending
// today. A today with nothing logged yet does not break the streak.
func Streak(log habit.Log, today time.Time) int {
	day := habit.Midnight(today)
	if log.Day(day).Completed() == 0 {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for log.Day(day).Completed() > 0 {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

// Rate is the share of the last days days on which name was completed.
func Rate(log habit.Log, today time.Time, name string, days int) float64 {
	if days <= 0 {
		return 0
	}
	day := habit.Midnight(today)
	done := 0
	for i := 0; i < days; i++ {
		if log.Day(day.AddDate(0, 0, -i)).Done(name) {
			done++
		}
	}
	return float64(done) / float64(days)
}
