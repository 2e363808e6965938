package asciify

import (
	"image"
	"math"
)

// CharAspect is the height-to-width ratio of a monospace character cell.
const CharAspect = 2

// Preset gradients, darkest to lightest.
var (
	ASCII = Gradient(" +#")
	Shade = Gradient(" ░▒▓█")
)

// Gradient is an ordered set of glyphs, from emptiest (index 0) to fullest.
// Each sample of the greyscale buffer is mapped to exactly one glyph.
type Gradient []rune

// NewGradient returns the gradient spelled out by levels.
func NewGradient(levels string) (Gradient, error) {
	if levels == "" {
		return nil, ErrEmptyGradient
	}
	return Gradient(levels), nil
}

// Reverse returns a copy of g with the glyph order reversed.
func (g Gradient) Reverse() Gradient {
	r := make(Gradient, len(g))
	for i, c := range g {
		r[len(g)-1-i] = c
	}
	return r
}

// Index tonemaps the luminance l into the range [0, len(g)-1], treating lo
// and hi as the darkest and brightest luminance of the buffer. The
// denominator is never zero, so a flat buffer always resolves to 0.
func (g Gradient) Index(l, lo, hi uint8) int {
	n := len(g)
	if l < lo {
		l = lo
	}
	i := int(l-lo) * n / (int(hi) + 1 - int(lo))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// Grid returns one sample per character: cols wide, and tall enough to keep
// the source's aspect ratio once characters are drawn CharAspect times
// taller than they are wide. Half rows round to even, like the braille
// threshold.
func (g Gradient) Grid(src image.Rectangle, cols int) (w, h int) {
	if src.Dx() == 0 {
		return cols, 1
	}
	h = int(math.RoundToEven(float64(src.Dy()*cols) / float64(src.Dx()*CharAspect)))
	if h < 1 {
		h = 1
	}
	return cols, h
}

// Render maps every sample of buf to a glyph, one row of text per row of
// pixels.
func (g Gradient) Render(buf *image.Gray, invert bool) []string {
	levels := g
	if invert {
		levels = g.Reverse()
	}
	lo, hi := Extrema(buf)

	bounds := buf.Bounds()
	rows := make([]string, 0, bounds.Dy())
	line := make([]rune, 0, bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		line = line[:0]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			line = append(line, levels[g.Index(buf.GrayAt(x, y).Y, lo, hi)])
		}
		rows = append(rows, string(line))
	}
	return rows
}

func (Gradient) style() {}
