package asciify

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every configuration error.
var ErrConfig = errors.New("invalid configuration")

var (
	ErrEmptyGradient = fmt.Errorf("%w: gradient must contain at least one glyph", ErrConfig)
	ErrWidth         = fmt.Errorf("%w: width must be a positive integer", ErrConfig)
	ErrStyleConflict = fmt.Errorf("%w: only one of --ascii, --shade, --dots and --custom may be set", ErrConfig)
	ErrMissingArgs   = fmt.Errorf("%w: expected a source image and a width", ErrConfig)
)

// DecodeError reports an image that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "decode: " + e.Err.Error()
	}
	return "decode " + e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
