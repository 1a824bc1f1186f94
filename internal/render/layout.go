package render

import (
	"image"
	"time"

	"github.com/ramanasai/habitcal/internal/calendar"
	"github.com/ramanasai/habitcal/internal/habit"
)

// Mode selects the calendar layout. Grid and rows are never combined.
type Mode string

const (
	ModeGrid Mode = "grid"
	ModeRows Mode = "rows"
)

// Layout binds a render configuration to one mode and its inputs.
type Layout struct {
	Config  Config
	Mode    Mode
	Habits  []string // rows mode, in display order
	RowDays int

	Typeface *Typeface // rows mode labels, nil for the built-in face
}

// Image renders log as of today. Safe for concurrent use.
func (l Layout) Image(log habit.Log, today time.Time, t Theme) *image.NRGBA {
	if l.Mode == ModeRows {
		rows := calendar.BuildRows(log, today, l.Habits, l.RowDays)
		return l.Config.Rows(rows, t, l.Typeface.Face())
	}
	g := calendar.BuildGrid(log, today, l.Config.Weeks, l.Config.Days)
	return l.Config.Grid(g, t)
}

// Size is the canvas size Image produces, independent of the log contents.
func (l Layout) Size() (width, height int) {
	if l.Mode == ModeRows {
		rows := calendar.BuildRows(nil, time.Time{}, l.Habits, l.RowDays)
		return l.Config.RowsSize(rows, l.Typeface.Face())
	}
	return l.Config.GridSize()
}
