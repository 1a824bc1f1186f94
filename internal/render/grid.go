package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/ramanasai/habitcal/internal/calendar"
)

// Grid draws the heatmap. Cells are disjoint, so draw order is irrelevant.
func (c Config) Grid(g calendar.Grid, t Theme) *image.NRGBA {
	w, h := c.GridSize()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	border := c.Scheme(t).Border

	for week, col := range g.Weeks {
		for day, cell := range col {
			if cell.Empty {
				continue
			}
			x, y := c.CellOrigin(week, day)
			rect := image.Rect(x, y, x+c.CellSize, y+c.CellSize)
			roundedRect(img, rect, c.Radius, c.ColorFor(cell, g.Max, t), border)
		}
	}
	return img
}

// EncodePNG writes img as a PNG stream.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}

// roundedRect fills the rectangle from r.Min to r.Max inclusive with
// corners of the given radius and a one pixel outline.
func roundedRect(img *image.NRGBA, r image.Rectangle, radius int, fill, outline color.NRGBA) {
	inside := func(px, py int) bool {
		if px < r.Min.X || px > r.Max.X || py < r.Min.Y || py > r.Max.Y {
			return false
		}
		cx := clampInt(px, r.Min.X+radius, r.Max.X-radius)
		cy := clampInt(py, r.Min.Y+radius, r.Max.Y-radius)
		return math.Hypot(float64(px-cx), float64(py-cy)) <= float64(radius)
	}

	for py := r.Min.Y; py <= r.Max.Y; py++ {
		for px := r.Min.X; px <= r.Max.X; px++ {
			if !inside(px, py) {
				continue
			}
			edge := !inside(px-1, py) || !inside(px+1, py) || !inside(px, py-1) || !inside(px, py+1)
			if edge {
				img.SetNRGBA(px, py, outline)
			} else {
				img.SetNRGBA(px, py, fill)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
