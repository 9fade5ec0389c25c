package colorspace

import (
	"fmt"
	"runtime"

	"github.com/DianaNites/embedded-image/internal/parallel"
	"github.com/DianaNites/embedded-image/pixel"
)

// Convert re-encodes every pixel of img in place so that its (R, G, B) values
// represent the same light under the target space, then updates the tag.
// Alpha never changes.
//
// Converting a space to itself, or to or from AsIs, only updates the tag.
// A space without a registered profile fails with
// pixel.ErrUnsupportedConversion before any sample is touched.
func Convert(img *pixel.Image, target pixel.Space) error {
	return convert(img, target, 1)
}

// ConvertParallel is Convert with the per-pixel work sharded by row ranges
// over the given number of workers. workers <= 0 uses GOMAXPROCS. The result
// is identical to Convert: pixels are independent, and each worker writes a
// disjoint slice of the buffer.
func ConvertParallel(img *pixel.Image, target pixel.Space, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return convert(img, target, workers)
}

// step is the precomputed per-pixel pipeline for one (source, target) pair.
type step struct {
	decode  TransferFunc
	toXYZ   *Mat3
	fromXYZ *Mat3
	encode  TransferFunc
}

func convert(img *pixel.Image, target pixel.Space, workers int) error {
	source := img.Space()

	// Identity and AsIs conversions are pure retags.
	if source == target || source == pixel.AsIs || target == pixel.AsIs {
		img.SetSpace(target)
		return nil
	}

	// Resolve both ends before mutating anything so an unsupported pair
	// leaves the buffer untouched.
	src, ok := Lookup(source)
	if !ok {
		return fmt.Errorf("convert %v to %v: %w", source, target, pixel.ErrUnsupportedConversion)
	}
	dst, ok := Lookup(target)
	if !ok {
		return fmt.Errorf("convert %v to %v: %w", source, target, pixel.ErrUnsupportedConversion)
	}

	s := step{decode: src.Decode, encode: dst.Encode}
	if src.Gamut != dst.Gamut {
		s.toXYZ = src.Gamut.toXYZ()
		s.fromXYZ = dst.Gamut.fromXYZ()
	}

	pixels := img.Pixels()
	if workers <= 1 || len(pixels) < workers {
		convertRange(pixels, &s)
	} else {
		parallel.ShardRows(len(pixels), workers, func(lo, hi int) {
			convertRange(pixels[lo:hi], &s)
		})
	}

	img.SetSpace(target)
	return nil
}

func convertRange(pixels []pixel.Pixel, s *step) {
	for i := range pixels {
		r, g, b := pixels[i][0], pixels[i][1], pixels[i][2]

		if s.decode != nil {
			r, g, b = s.decode(r), s.decode(g), s.decode(b)
		}
		if s.toXYZ != nil {
			x, y, z := s.toXYZ.Apply(r, g, b)
			r, g, b = s.fromXYZ.Apply(x, y, z)
		}
		if s.encode != nil {
			r, g, b = s.encode(r), s.encode(g), s.encode(b)
		}

		pixels[i][0], pixels[i][1], pixels[i][2] = r, g, b
	}
}
