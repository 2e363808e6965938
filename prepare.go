package asciify

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Adjustments are optional tone corrections applied to the downscaled image
// before greyscale conversion. Zero values leave the image untouched.
type Adjustments struct {
	Gamma           float64 // 1.0 gives the original image, less darkens, more lightens.
	Brightness      float64 // -100 to 100.
	Contrast        float64 // -100 to 100.
	Sharpen         float64 // Sigma; greater than 0 sharpens.
	SigmoidMidpoint float64 // Between 0 and 1; 0.5 when unset.
	SigmoidFactor   float64 // 0 gives the original image.
}

func (a Adjustments) apply(img image.Image) image.Image {
	if a.Gamma > 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen > 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		midpoint := a.SigmoidMidpoint
		if midpoint == 0 {
			midpoint = 0.5
		}
		img = imaging.AdjustSigmoid(img, midpoint, a.SigmoidFactor)
	}
	return img
}

// Filters maps resampling filter names to their implementation.
var Filters = map[string]resize.InterpolationFunction{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

// ParseFilter looks up a resampling filter by name. An empty name selects
// nearest neighbor, which averages every source pixel under a sample when
// shrinking.
func ParseFilter(name string) (resize.InterpolationFunction, error) {
	if name == "" {
		return resize.NearestNeighbor, nil
	}
	f, ok := Filters[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown filter %q", ErrConfig, name)
	}
	return f, nil
}

// Options control how an image is turned into rows of glyphs.
type Options struct {
	Width      int         // Output width in characters.
	Invert     bool        // Flip the light/dark sense of the mapping.
	Style      Style       // Defaults to ASCII.
	Background color.Color // Transparency is flattened onto this; see BackgroundFor.
	Filter     resize.InterpolationFunction
	Adjust     Adjustments
}

// Validate reports whether the options can render an image.
func (o Options) Validate() error {
	if o.Width <= 0 {
		return ErrWidth
	}
	if g, ok := o.Style.(Gradient); ok && len(g) == 0 {
		return ErrEmptyGradient
	}
	return nil
}

func (o Options) style() Style {
	if o.Style == nil {
		return ASCII
	}
	return o.Style
}

// BackgroundFor returns the color transparent pixels are flattened onto:
// white when inverting and black otherwise, so that transparent areas always
// render as the emptiest glyph.
func BackgroundFor(invert bool) color.Color {
	if invert {
		return color.White
	}
	return color.Black
}

// Flatten composites img onto an opaque canvas of color bg. The result's
// bounds start at (0, 0).
func Flatten(img image.Image, bg color.Color) *image.NRGBA {
	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), bg)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

// Grayscale converts img to a single channel luminance buffer.
func Grayscale(img image.Image) *image.Gray {
	grey := imaging.Grayscale(img)
	bounds := grey.Bounds()
	buf := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			// Grayscale leaves R, G and B equal.
			buf.Pix[y*buf.Stride+x] = grey.Pix[y*grey.Stride+x*4]
		}
	}
	return buf
}

// Prepare flattens, downscales, adjusts and greyscales img to the sample grid
// the options' style needs.
func Prepare(img image.Image, opts Options) (*image.Gray, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, &DecodeError{Err: errors.New("image has zero dimension")}
	}

	bg := opts.Background
	if bg == nil {
		bg = BackgroundFor(opts.Invert)
	}
	w, h := opts.style().Grid(img.Bounds(), opts.Width)

	var scaled image.Image = Flatten(img, bg)
	scaled = resize.Resize(uint(w), uint(h), scaled, opts.Filter)
	scaled = opts.Adjust.apply(scaled)
	return Grayscale(scaled), nil
}

// Render converts img to rows of glyphs.
func Render(img image.Image, opts Options) ([]string, error) {
	buf, err := Prepare(img, opts)
	if err != nil {
		return nil, err
	}
	return opts.style().Render(buf, opts.Invert), nil
}
