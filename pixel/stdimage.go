package pixel

import (
	"image"
	"image/color"
)

// FromImage decodes a standard library image into a pixel buffer tagged with
// the given color space. Samples are taken non-premultiplied at 8-bit depth,
// matching FromBytes semantics.
func FromImage(img image.Image, space Space) *Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]Pixel, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pixels[y*width+x] = Pixel{
				float32(c.R) / 255,
				float32(c.G) / 255,
				float32(c.B) / 255,
				float32(c.A) / 255,
			}
		}
	}

	return &Image{
		pixels: pixels,
		width:  width,
		height: height,
		space:  space,
	}
}

// ToNRGBA re-quantizes the buffer into a standard library NRGBA image,
// clamping each channel to [0, 1]. The color space tag is not interpreted;
// callers wanting display-encoded output should convert first.
func (m *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := m.pixels[y*m.width+x]
			out.SetNRGBA(x, y, color.NRGBA{
				R: quantize8(p[0]),
				G: quantize8(p[1]),
				B: quantize8(p[2]),
				A: quantize8(p[3]),
			})
		}
	}
	return out
}
