package ui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/habitcal/internal/render"
)

// Styles holds the terminal styles for one theme.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Border  lipgloss.Style
	Hint    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style

	Cells  [5]lipgloss.Style // indexed like render.Palette
	Done   lipgloss.Style
	Missed lipgloss.Style
}

// terminal backgrounds that translucent palette entries are blended onto
var (
	lightBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	darkBackground  = color.NRGBA{R: 13, G: 17, B: 23, A: 255}
)

// NewStyles derives terminal styles from the bitmap colors of theme t.
func NewStyles(cfg render.Config, t render.Theme) Styles {
	scheme := cfg.Scheme(t)
	bg := lightBackground
	if t == render.Dark {
		bg = darkBackground
	}
	fg := func(c color.NRGBA) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex(c, bg)))
	}

	st := Styles{
		Title:   fg(scheme.Palette[4]).Bold(true),
		Label:   fg(scheme.Text).Faint(true),
		Value:   fg(scheme.Text),
		Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(hex(scheme.Border, bg))).Padding(0, 1),
		Hint:    lipgloss.NewStyle().Faint(true),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		Success: fg(scheme.Done).Bold(true),
		Done:    fg(scheme.Done),
		Missed:  fg(scheme.Missed),
	}
	for i, c := range scheme.Palette {
		st.Cells[i] = fg(c)
	}
	return st
}

// hex flattens c onto bg and formats it as #rrggbb.
func hex(c, bg color.NRGBA) string {
	blend := func(f, b uint8) uint8 {
		return uint8((int(f)*int(c.A) + int(b)*(255-int(c.A))) / 255)
	}
	return fmt.Sprintf("#%02x%02x%02x", blend(c.R, bg.R), blend(c.G, bg.G), blend(c.B, bg.B))
}
