package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ramanasai/habitcal/internal/calendar"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DayLabel formats a column header as month/day without leading zeros.
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// HabitLabel capitalizes a habit name: first letter upper case, the rest
// lower case.
func HabitLabel(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}

// rowLayout is the geometry of one row render.
type rowLayout struct {
	labelWidth   int
	headerHeight int
	step         int
}

func (c Config) rowLayout(rows calendar.Rows, face font.Face) rowLayout {
	labelWidth := c.RowLabelMin
	for _, name := range rows.Habits {
		w := font.MeasureString(face, HabitLabel(name)).Ceil() + 2*c.CellPadding
		if w > labelWidth {
			labelWidth = w
		}
	}
	l := rowLayout{
		labelWidth:   labelWidth,
		headerHeight: face.Metrics().Height.Ceil() + 2*c.CellPadding,
		step:         c.RowCellSize + c.CellPadding,
	}
	// the page declares half the canvas size, so keep both sides even
	if (l.labelWidth+len(rows.Dates)*l.step+c.CellPadding)%2 != 0 {
		l.labelWidth++
	}
	if (l.headerHeight+len(rows.Habits)*l.step+c.CellPadding)%2 != 0 {
		l.headerHeight++
	}
	return l
}

// RowsSize is the canvas size of a row render for the given habits and face.
func (c Config) RowsSize(rows calendar.Rows, face font.Face) (width, height int) {
	l := c.rowLayout(rows, face)
	width = l.labelWidth + len(rows.Dates)*l.step + c.CellPadding
	height = l.headerHeight + len(rows.Habits)*l.step + c.CellPadding
	return width, height
}

// RowCellOrigin is the top-left pixel of the cell for habit i on day j.
func (c Config) RowCellOrigin(rows calendar.Rows, face font.Face, i, j int) (x, y int) {
	l := c.rowLayout(rows, face)
	return l.labelWidth + c.CellPadding + j*l.step, l.headerHeight + c.CellPadding + i*l.step
}

// Rows draws one row per habit and one column per day, done or missed.
func (c Config) Rows(rows calendar.Rows, t Theme, face font.Face) *image.NRGBA {
	l := c.rowLayout(rows, face)
	w, h := c.RowsSize(rows, face)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	s := c.Scheme(t)
	ascent := face.Metrics().Ascent.Ceil()

	for j, date := range rows.Dates {
		label := DayLabel(date)
		colX := l.labelWidth + c.CellPadding + j*l.step
		tw := font.MeasureString(face, label).Ceil()
		drawText(img, face, s.Text, colX+(c.RowCellSize-tw)/2, c.CellPadding+ascent, label)
	}

	for i, name := range rows.Habits {
		rowY := l.headerHeight + c.CellPadding + i*l.step
		textY := rowY + (c.RowCellSize+ascent)/2 - 1
		drawText(img, face, s.Text, c.CellPadding, textY, HabitLabel(name))

		for j := range rows.Dates {
			fill := s.Missed
			if rows.Done[i][j] {
				fill = s.Done
			}
			x := l.labelWidth + c.CellPadding + j*l.step
			rect := image.Rect(x, rowY, x+c.RowCellSize, rowY+c.RowCellSize)
			roundedRect(img, rect, c.Radius, fill, s.Border)
		}
	}
	return img
}

// drawText writes s with its baseline at y.
func drawText(img *image.NRGBA, face font.Face, col color.NRGBA, x, y int, s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
