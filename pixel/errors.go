package pixel

import "errors"

var (
	// ErrInvalidLength is returned when raw input does not contain exactly
	// width*height*4 bytes
	ErrInvalidLength = errors.New("invalid input length")

	// ErrInvalidResolution is returned when a width or height is less than 1
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrUnsupportedConversion is returned when no transform is defined for a
	// (source, target) color space pair
	ErrUnsupportedConversion = errors.New("unsupported color space conversion")
)
