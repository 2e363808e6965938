/*
Package asciify renders raster images as text. Every pixel (or block of pixels)
of a downscaled greyscale copy of the image becomes one glyph, chosen either
from a gradient of characters ordered from emptiest to fullest, or from the
256 unicode braille patterns.

	img, err := asciify.Open("photo.png")
	if err != nil {
		return err
	}
	rows, err := asciify.Render(img, asciify.Options{Width: 80, Style: asciify.Shade})
	if err != nil {
		return err
	}
	return asciify.NewEncoder(os.Stdout, "\n").Encode(rows)
*/
package asciify

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode decodes an image in any registered format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// Open reads and decodes the image at path.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// Extrema returns the darkest and brightest luminance in buf. An empty
// buffer reports (0, 0).
func Extrema(buf *image.Gray) (lo, hi uint8) {
	bounds := buf.Bounds()
	if bounds.Empty() {
		return 0, 0
	}
	lo, hi = 0xff, 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			l := buf.GrayAt(x, y).Y
			if l < lo {
				lo = l
			}
			if l > hi {
				hi = l
			}
		}
	}
	return lo, hi
}

// Encoder writes rendered rows, terminating each one with a line separator.
type Encoder struct {
	w   io.Writer
	eol string
}

// NewEncoder returns an Encoder writing to w. If eol is empty, "\n" is used.
func NewEncoder(w io.Writer, eol string) *Encoder {
	if eol == "" {
		eol = "\n"
	}
	return &Encoder{
		w:   w,
		eol: eol,
	}
}

// Encode writes every row followed by the encoder's line separator.
func (enc *Encoder) Encode(rows []string) error {
	for _, row := range rows {
		if _, err := io.WriteString(enc.w, row+enc.eol); err != nil {
			return err
		}
	}
	return nil
}
