package asciify

import (
	"image"
	"math"
)

// Cell is the number of sub-pixel samples a single braille glyph covers.
type Cell struct {
	Cols, Rows int
}

var (
	// Cell8 packs a 2x4 block into one of the 256 eight dot patterns.
	Cell8 = Cell{Cols: 2, Rows: 4}
	// Cell6 packs a 2x3 block into one of the 64 six dot patterns.
	Cell6 = Cell{Cols: 2, Rows: 3}
)

// Dots represents an 8 dot braille pattern in x,y coordinates space. Eg:
//   +----------+
//   |(0,0)(1,0)|
//   |(0,1)(1,1)|
//   |(0,2)(1,2)|
//   |(0,3)(1,3)|
//   +----------+
type Dots [2][4]int

// Rune maps each point to a dot identifier and calculates the
// corresponding unicode symbol.
//   +------+
//   |(1)(4)|
//   |(2)(5)|
//   |(3)(6)|
//   |(7)(8)|
//   +------+
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering)
func (d Dots) Rune() rune {
	var v int
	for x := 0; x < 2; x++ {
		for y := 0; y < 4; y++ {
			v |= (d[x][y] & 1) << shift(x, y)
		}
	}
	return rune(v) + '\u2800'
}

func (d Dots) String() string {
	return string(d.Rune())
}

// The first three rows of each column are dots 1-3 and 4-6, the bottom row
// holds dots 7 and 8.
func shift(x, y int) uint {
	if y < 3 {
		return uint(x*3 + y)
	}
	return uint(x + 6)
}

// Braille renders each Cell-sized block of samples as one braille glyph.
type Braille struct {
	Cell Cell
}

// Grid returns the sample grid needed for cols glyphs per row. Its height
// keeps the source's aspect ratio given the shape of a single dot within a
// character cell, rounding up so that no source rows are dropped.
func (b Braille) Grid(src image.Rectangle, cols int) (w, h int) {
	cell := b.cell()
	w = cols * cell.Cols
	if src.Dx() == 0 {
		return w, cell.Rows
	}
	num := src.Dy() * w * cell.Rows
	den := src.Dx() * CharAspect * cell.Cols
	h = (num + den - 1) / den
	if h < 1 {
		h = 1
	}
	return w, h
}

// Render binarizes buf around the midpoint of its luminance range and packs
// every block into a glyph. Samples past the bottom or right edge are left
// unset regardless of invert. A flat buffer has no midpoint and renders with
// every in-bounds dot unset before inversion.
func (b Braille) Render(buf *image.Gray, invert bool) []string {
	cell := b.cell()
	lo, hi := Extrema(buf)

	// An image's bounds do not necessarily start at (0, 0), so the two loops start
	// at bounds.Min.Y and bounds.Min.X.
	bounds := buf.Bounds()
	var rows []string
	for py := bounds.Min.Y; py < bounds.Max.Y; py += cell.Rows {
		var line []rune
		for px := bounds.Min.X; px < bounds.Max.X; px += cell.Cols {
			var d Dots
			for y := 0; y < cell.Rows; y++ {
				for x := 0; x < cell.Cols; x++ {
					if px+x >= bounds.Max.X || py+y >= bounds.Max.Y {
						continue
					}
					d[x][y] = bit(buf.GrayAt(px+x, py+y).Y, lo, hi)
					if invert {
						d[x][y] ^= 1
					}
				}
			}
			line = append(line, d.Rune())
		}
		rows = append(rows, string(line))
	}
	return rows
}

// bit thresholds l at the middle of [lo, hi], rounding halves to even.
func bit(l, lo, hi uint8) int {
	if hi == lo {
		return 0
	}
	return int(math.RoundToEven(float64(l-lo) / float64(hi-lo)))
}

// Only the two braille layouts exist; anything else packs as Cell8.
func (b Braille) cell() Cell {
	if b.Cell == Cell6 {
		return Cell6
	}
	return Cell8
}

func (Braille) style() {}
