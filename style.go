package asciify

import (
	"fmt"
	"image"
)

// Style turns a greyscale buffer into rows of glyphs. The only styles are
// Gradient, which maps one sample to one glyph, and Braille, which packs a
// block of samples into one glyph.
type Style interface {
	// Grid returns the sample grid a source with bounds src must be
	// resampled to in order to produce cols glyphs per row.
	Grid(src image.Rectangle, cols int) (w, h int)
	// Render maps buf to rows of text. Rows carry no line terminators.
	Render(buf *image.Gray, invert bool) []string

	style()
}

// Style names accepted by ParseStyle.
const (
	StyleASCII  = "ascii"
	StyleShade  = "shade"
	StyleDots   = "dots"
	StyleCustom = "custom"
)

// ParseStyle resolves a style name. levels is only read for StyleCustom and
// sixDot only for StyleDots.
func ParseStyle(name, levels string, sixDot bool) (Style, error) {
	switch name {
	case "", StyleASCII:
		return ASCII, nil
	case StyleShade:
		return Shade, nil
	case StyleCustom:
		g, err := NewGradient(levels)
		if err != nil {
			return nil, err
		}
		return g, nil
	case StyleDots:
		if sixDot {
			return Braille{Cell: Cell6}, nil
		}
		return Braille{Cell: Cell8}, nil
	}
	return nil, fmt.Errorf("%w: unknown style %q", ErrConfig, name)
}
