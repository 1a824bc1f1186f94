// Package render maps habit activity to colors and draws calendar bitmaps.
package render

import (
	"github.com/ramanasai/habitcal/internal/calendar"
)

// Config is the fixed geometry and color table of a render. Build it once
// with DefaultConfig and pass it by value.
type Config struct {
	Scale       int
	CellSize    int
	CellPadding int
	LeftMargin  int // split evenly left and right of the grid
	Radius      int
	Weeks       int
	Days        int

	RowCellSize int
	RowLabelMin int

	Light Scheme
	Dark  Scheme
}

// DefaultConfig renders at 2x: 24px cells, 4px gaps, 53 weeks.
func DefaultConfig() Config {
	const scale = 2
	return Config{
		Scale:       scale,
		CellSize:    12 * scale,
		CellPadding: 2 * scale,
		LeftMargin:  20 * scale,
		Radius:      3 * scale,
		Weeks:       calendar.DefaultWeeks,
		Days:        calendar.DefaultDaysPerWeek,
		RowCellSize: 18 * scale,
		RowLabelMin: 60 * scale,
		Light:       lightScheme(),
		Dark:        darkScheme(),
	}
}

// Scheme returns the colors for an already validated theme.
func (c Config) Scheme(t Theme) Scheme {
	if t == Dark {
		return c.Dark
	}
	return c.Light
}

// GridSize is the exact canvas size of a grid render.
func (c Config) GridSize() (width, height int) {
	step := c.CellSize + c.CellPadding
	width = c.Weeks*step + c.CellPadding + c.LeftMargin
	height = c.Days*step + c.CellPadding
	return width, height
}

// CellOrigin is the top-left pixel of the grid cell at [week][day].
func (c Config) CellOrigin(week, day int) (x, y int) {
	step := c.CellSize + c.CellPadding
	x = week*step + c.CellPadding + c.LeftMargin/2
	y = day*step + c.CellPadding
	return x, y
}
