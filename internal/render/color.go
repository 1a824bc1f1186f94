package render

import (
	"image/color"

	"github.com/ramanasai/habitcal/internal/calendar"
)

// PaletteIndex buckets a count against the render maximum. Zero maps to 0;
// any positive count maps into 1..4.
func PaletteIndex(count, max int) int {
	if count <= 0 {
		return 0
	}
	if max < 1 {
		max = 1
	}
	idx := count * 4 / max
	if idx < 1 {
		idx = 1
	}
	if idx > 4 {
		idx = 4
	}
	return idx
}

// ColorFor returns the fill of a grid cell. Empty cells are transparent.
func (c Config) ColorFor(cell calendar.Cell, max int, t Theme) color.NRGBA {
	if cell.Empty {
		return color.NRGBA{}
	}
	return c.Scheme(t).Palette[PaletteIndex(cell.Count, max)]
}
