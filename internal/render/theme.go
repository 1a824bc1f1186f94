package render

import (
	"errors"
	"fmt"
	"image/color"
)

// Theme names a color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrInvalidTheme is wrapped by ParseTheme for anything but light or dark.
var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme validates a user supplied theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case Light, Dark:
		return t, nil
	}
	return "", fmt.Errorf("%w %q: must be %q or %q", ErrInvalidTheme, s, Light, Dark)
}

// Palette is the 5 step activity ramp. Index 0 is no activity, index 4 is
// at or above the render's maximum.
type Palette [5]color.NRGBA

// Scheme holds every color one theme needs.
type Scheme struct {
	Palette Palette
	Border  color.NRGBA
	Done    color.NRGBA // row layout, completed
	Missed  color.NRGBA // row layout, not completed
	Text    color.NRGBA
}

func lightScheme() Scheme {
	return Scheme{
		Palette: Palette{
			{R: 248, G: 248, B: 246, A: 255}, // warm beige
			{R: 155, G: 233, B: 168, A: 255},
			{R: 64, G: 196, B: 99, A: 255},
			{R: 48, G: 161, B: 78, A: 255},
			{R: 33, G: 110, B: 57, A: 255},
		},
		Border: color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		Done:   color.NRGBA{R: 64, G: 196, B: 99, A: 255},
		Missed: color.NRGBA{R: 248, G: 248, B: 246, A: 255},
		Text:   color.NRGBA{R: 36, G: 41, B: 46, A: 255},
	}
}

func darkScheme() Scheme {
	return Scheme{
		Palette: Palette{
			{R: 48, G: 54, B: 61, A: 255}, // dark gray
			{R: 74, G: 126, B: 255, A: 80},
			{R: 74, G: 126, B: 255, A: 120},
			{R: 74, G: 126, B: 255, A: 180},
			{R: 74, G: 126, B: 255, A: 255},
		},
		Border: color.NRGBA{R: 74, G: 126, B: 255, A: 100},
		Done:   color.NRGBA{R: 74, G: 126, B: 255, A: 255},
		Missed: color.NRGBA{R: 48, G: 54, B: 61, A: 255},
		Text:   color.NRGBA{R: 201, G: 209, B: 217, A: 255},
	}
}
