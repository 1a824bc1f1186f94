// Package calendar selects the dates shown on a habit calendar and
// aggregates the log over them.
package calendar

import (
	"time"

	"github.com/ramanasai/habitcal/internal/habit"
)

const (
	DefaultWeeks       = 53
	DefaultDaysPerWeek = 7
)

// Cell is one day of the grid. Empty cells lie after today and carry no count.
type Cell struct {
	Date  time.Time
	Count int
	Empty bool
}

// Grid is a week-major matrix of cells, Weeks[week][day], in ascending date
// order. Max is the largest count in the grid, never less than 1.
type Grid struct {
	Start time.Time
	Today time.Time
	Weeks [][]Cell
	Max   int
}

// GridStart returns the Sunday that opens a grid of the given number of
// weeks whose last column contains today.
func GridStart(today time.Time, weeks int) time.Time {
	today = habit.Midnight(today)
	sinceSunday := int(today.Weekday())
	return today.AddDate(0, 0, -(sinceSunday + (weeks-1)*7))
}

// BuildGrid lays out weeks x days cells ending in the week of today.
func BuildGrid(log habit.Log, today time.Time, weeks, days int) Grid {
	if weeks <= 0 {
		weeks = DefaultWeeks
	}
	if days <= 0 {
		days = DefaultDaysPerWeek
	}
	today = habit.Midnight(today)
	start := GridStart(today, weeks)

	g := Grid{Start: start, Today: today, Weeks: make([][]Cell, weeks), Max: 1}
	for w := 0; w < weeks; w++ {
		col := make([]Cell, days)
		for d := 0; d < days; d++ {
			date := start.AddDate(0, 0, w*7+d)
			if date.After(today) {
				col[d] = Cell{Date: date, Empty: true}
				continue
			}
			n := log.Day(date).Completed()
			col[d] = Cell{Date: date, Count: n}
			if n > g.Max {
				g.Max = n
			}
		}
		g.Weeks[w] = col
	}
	return g
}

// Cells returns the grid flattened in ascending date order.
func (g Grid) Cells() []Cell {
	var out []Cell
	for _, col := range g.Weeks {
		out = append(out, col...)
	}
	return out
}
