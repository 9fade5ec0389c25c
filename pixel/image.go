// Package pixel provides the in-memory floating-point RGBA buffer shared by
// the colorspace and resample packages.
//
// An Image owns a contiguous row-major slice of 4-channel float32 pixels plus
// its resolution and a color space tag. The buffer is exclusively owned by its
// caller: color conversion mutates it in place, resampling swaps in a freshly
// allocated buffer, and no component retains a reference across calls.
package pixel

// Pixel is one RGBA sample. Channels are normalized so that 8-bit input maps
// to [0, 1]; intermediate gamut transforms may move values outside that range.
type Pixel [4]float32

// Image holds decoded pixel data together with its shape and color space.
// The invariant len(pixels) == width*height holds at all times.
type Image struct {
	pixels []Pixel
	width  int
	height int
	space  Space
}

// FromBytes builds an Image from raw interleaved pixel data.
//
// The input must contain exactly width*height*4 bytes in RGBA order, 8 bits
// per channel. Each channel is decoded to float32 and divided by 255.
//
// Returns ErrInvalidResolution if width or height is less than 1, and
// ErrInvalidLength if the input length does not match the resolution.
func FromBytes(data []byte, width, height int, space Space) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidResolution
	}
	if len(data) != width*height*4 {
		return nil, ErrInvalidLength
	}

	pixels := make([]Pixel, width*height)
	for i := range pixels {
		chunk := data[i*4 : i*4+4]
		pixels[i] = Pixel{
			float32(chunk[0]) / 255,
			float32(chunk[1]) / 255,
			float32(chunk[2]) / 255,
			float32(chunk[3]) / 255,
		}
	}

	return &Image{
		pixels: pixels,
		width:  width,
		height: height,
		space:  space,
	}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the image height in pixels.
func (m *Image) Height() int {
	return m.height
}

// Space returns the current color space tag.
func (m *Image) Space() Space {
	return m.space
}

// Pixels returns the sample sequence backing the image. The slice is a view,
// not a copy; callers must not retain it across a Reshape.
func (m *Image) Pixels() []Pixel {
	return m.pixels
}

// SetSpace updates the color space tag without touching sample values.
// Conversion code is responsible for making the samples match the tag.
func (m *Image) SetSpace(space Space) {
	m.space = space
}

// Reshape replaces the sample buffer and resolution in one step, preserving
// the buffer/shape invariant. The previous buffer is discarded.
//
// Returns ErrInvalidResolution for a dimension less than 1 and
// ErrInvalidLength if the new buffer does not match the new resolution.
func (m *Image) Reshape(pixels []Pixel, width, height int) error {
	if width < 1 || height < 1 {
		return ErrInvalidResolution
	}
	if len(pixels) != width*height {
		return ErrInvalidLength
	}
	m.pixels = pixels
	m.width = width
	m.height = height
	return nil
}

// Clone returns a deep copy with its own sample buffer.
func (m *Image) Clone() *Image {
	pixels := make([]Pixel, len(m.pixels))
	copy(pixels, m.pixels)
	return &Image{
		pixels: pixels,
		width:  m.width,
		height: m.height,
		space:  m.space,
	}
}

// Bytes re-quantizes the image to 8-bit interleaved RGBA. Channel values are
// clamped to [0, 1] and rounded, so out-of-gamut intermediates never wrap.
func (m *Image) Bytes() []byte {
	out := make([]byte, len(m.pixels)*4)
	for i, p := range m.pixels {
		for c := 0; c < 4; c++ {
			out[i*4+c] = quantize8(p[c])
		}
	}
	return out
}

func quantize8(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
