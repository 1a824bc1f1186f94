package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const defaultFontSize = 14

// Typeface is a parsed label font. The parsed font is read-only and may be
// shared; faces built from it keep glyph caches and must not be.
type Typeface struct {
	font *truetype.Font
	size float64
}

// LoadTypeface resolves the label font once at startup. An empty path
// selects the built-in 7x13 bitmap face and returns nil.
func LoadTypeface(path string, size float64) (*Typeface, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	tf, err := ParseTypeface(b, size)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return tf, nil
}

// ParseTypeface parses TrueType data.
func ParseTypeface(ttf []byte, size float64) (*Typeface, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultFontSize
	}
	return &Typeface{font: f, size: size}, nil
}

// Face returns a new face for one render. A nil Typeface yields the
// stateless built-in face.
func (t *Typeface) Face() font.Face {
	if t == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(t.font, &truetype.Options{
		Size:    t.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
