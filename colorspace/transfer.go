package colorspace

import "math"

// Transfer functions map a single channel value between display-encoded and
// linear-light representations. Inputs are expected in [0, 1]; the alpha
// channel is never passed through these.

// SRGBToLinear removes the IEC 61966-2-1 sRGB transfer curve from a channel.
func SRGBToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow((float64(c)+0.055)/1.055, 2.4))
}

// LinearToSRGB applies the sRGB transfer curve to a linear channel.
func LinearToSRGB(c float32) float32 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return float32(1.055*math.Pow(float64(c), 1/2.4) - 0.055)
}

// GammaToLinear removes a flat 2.2 gamma curve from a channel. Negative
// inputs clamp to 0: a fractional power of a negative base is NaN, and
// slightly negative channels are expected after a gamut matrix.
func GammaToLinear(c float32) float32 {
	if c <= 0 {
		return 0
	}
	return float32(math.Pow(float64(c), 2.2))
}

// LinearToGamma applies a flat 2.2 gamma curve to a linear channel. Negative
// inputs clamp to 0 for the same reason as GammaToLinear.
func LinearToGamma(c float32) float32 {
	if c <= 0 {
		return 0
	}
	return float32(math.Pow(float64(c), 1/2.2))
}
