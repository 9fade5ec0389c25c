package colorspace

// Gamut identifies a set of device primaries. Linear RGB in any gamut maps to
// CIE XYZ (D65) through a forward matrix; XYZ acts as the hub, so supporting
// a new gamut costs one matrix pair rather than a matrix per space pair.
type Gamut int

const (
	// GamutSRGB covers sRGB, linear sRGB and simple-gamma RGB
	GamutSRGB Gamut = iota

	// GamutDisplayP3 covers Display P3 / P3-D65
	GamutDisplayP3
)

// Forward matrices: linear device RGB -> CIE XYZ, D65 white point.
var (
	srgbToXYZ = Mat3{
		{0.4123908, 0.35758433, 0.1804808},
		{0.212639, 0.71516865, 0.07219232},
		{0.019330818, 0.11919478, 0.95053214},
	}
	displayP3ToXYZ = Mat3{
		{0.48657095, 0.2656677, 0.19821729},
		{0.22897457, 0.69173855, 0.07928691},
		{0, 0.04511338, 1.0439444},
	}
)

// Inverse matrices (XYZ -> linear device RGB), derived at init so the two
// directions of each pair stay numerically consistent.
var (
	xyzToSRGB      Mat3
	xyzToDisplayP3 Mat3
)

func init() {
	var err error
	if xyzToSRGB, err = srgbToXYZ.Inverse(); err != nil {
		panic("colorspace: sRGB gamut matrix not invertible: " + err.Error())
	}
	if xyzToDisplayP3, err = displayP3ToXYZ.Inverse(); err != nil {
		panic("colorspace: Display P3 gamut matrix not invertible: " + err.Error())
	}
}

// toXYZ returns the forward matrix for the gamut.
func (g Gamut) toXYZ() *Mat3 {
	if g == GamutDisplayP3 {
		return &displayP3ToXYZ
	}
	return &srgbToXYZ
}

// fromXYZ returns the inverse matrix for the gamut.
func (g Gamut) fromXYZ() *Mat3 {
	if g == GamutDisplayP3 {
		return &xyzToDisplayP3
	}
	return &xyzToSRGB
}
