package pixel

// Space identifies the photometric encoding of every sample in an Image.
// The tag applies uniformly to the whole buffer; there is no per-pixel tagging.
type Space int

const (
	// SRGB is display-encoded sRGB (IEC 61966-2-1 transfer curve, sRGB primaries)
	SRGB Space = iota

	// SRGBLinear is linear-light RGB with sRGB primaries
	SRGBLinear

	// SimpleGamma is flat 2.2 gamma encoded RGB with sRGB primaries
	SimpleGamma

	// DisplayP3 is display-encoded P3-D65 (sRGB transfer curve, P3 primaries)
	DisplayP3

	// AsIs asserts no photometric meaning; converting to or from it never
	// changes sample values, only the tag
	AsIs
)

// String returns a human-readable name for the color space.
func (s Space) String() string {
	switch s {
	case SRGB:
		return "sRGB"
	case SRGBLinear:
		return "sRGB-linear"
	case SimpleGamma:
		return "simple-gamma"
	case DisplayP3:
		return "display-p3"
	case AsIs:
		return "as-is"
	default:
		return "unknown"
	}
}
