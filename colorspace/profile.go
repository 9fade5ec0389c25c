// Package colorspace converts pixel.Image buffers between photometric
// encodings. Every supported space is described by a Profile pairing a
// transfer curve with a gamut; conversion decodes the source profile to
// linear light, crosses gamuts through CIE XYZ when needed, and re-encodes
// with the target profile. The dispatch is total: a space without a
// registered profile fails with pixel.ErrUnsupportedConversion instead of
// silently passing data through.
package colorspace

import "github.com/DianaNites/embedded-image/pixel"

// TransferFunc maps a single channel value; alpha is never passed through one.
type TransferFunc func(float32) float32

// Profile describes how one color space encodes linear light.
type Profile struct {
	// Space is the tag this profile is registered under
	Space pixel.Space

	// Decode maps a display-encoded channel to linear light. Nil means the
	// space is already linear.
	Decode TransferFunc

	// Encode maps a linear channel to the space's display encoding. Nil means
	// the space is already linear.
	Encode TransferFunc

	// Gamut selects the primaries the linear values are relative to
	Gamut Gamut
}

func init() {
	Register(Profile{
		Space:  pixel.SRGB,
		Decode: SRGBToLinear,
		Encode: LinearToSRGB,
		Gamut:  GamutSRGB,
	})
	Register(Profile{
		Space: pixel.SRGBLinear,
		Gamut: GamutSRGB,
	})
	Register(Profile{
		Space:  pixel.SimpleGamma,
		Decode: GammaToLinear,
		Encode: LinearToGamma,
		Gamut:  GamutSRGB,
	})
	Register(Profile{
		Space:  pixel.DisplayP3,
		Decode: SRGBToLinear,
		Encode: LinearToSRGB,
		Gamut:  GamutDisplayP3,
	})
}
