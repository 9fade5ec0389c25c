// Package resample rescales pixel.Image buffers with bilinear interpolation.
//
// Destination coordinates map to source coordinates with corner-anchored
// per-axis scale factors of (srcDim-1)/(dstDim-1), so the four corner pixels
// of the output always equal the four corner pixels of the input exactly.
package resample

import (
	"runtime"

	"github.com/DianaNites/embedded-image/internal/parallel"
	"github.com/DianaNites/embedded-image/pixel"
)

// Resize replaces the image's buffer with a newWidth x newHeight resampling
// of it. A resize to the current resolution is a no-op. On error the image is
// left unmodified; otherwise the new buffer and resolution are installed
// together, so the caller never observes a partially populated image.
//
// Returns pixel.ErrInvalidResolution, before any allocation, if either
// dimension is less than 1.
func Resize(img *pixel.Image, newWidth, newHeight int) error {
	return resize(img, newWidth, newHeight, 1)
}

// ResizeParallel is Resize with destination rows sharded over the given
// number of workers. workers <= 0 uses GOMAXPROCS. Each worker fills a
// disjoint row range of the output, so the result is identical to Resize.
func ResizeParallel(img *pixel.Image, newWidth, newHeight, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return resize(img, newWidth, newHeight, workers)
}

func resize(img *pixel.Image, newWidth, newHeight, workers int) error {
	if newWidth < 1 || newHeight < 1 {
		return pixel.ErrInvalidResolution
	}

	width, height := img.Width(), img.Height()
	if newWidth == width && newHeight == height {
		return nil
	}

	src := img.Pixels()
	out := make([]pixel.Pixel, newWidth*newHeight)

	// The mapping runs in float64, multiply before divide: at the last
	// destination index the product (dstDim-1)*(srcDim-1) divides exactly, so
	// corners land on srcDim-1 with no rounding and stay exact copies. A
	// destination axis of length 1 pins every sample to source coordinate 0.
	fill := func(yLo, yHi int) {
		for y := yLo; y < yHi; y++ {
			var sy float64
			if newHeight > 1 {
				sy = float64(y) * float64(height-1) / float64(newHeight-1)
			}
			for x := 0; x < newWidth; x++ {
				var sx float64
				if newWidth > 1 {
					sx = float64(x) * float64(width-1) / float64(newWidth-1)
				}
				out[y*newWidth+x] = bilinear(src, width, height, sx, sy)
			}
		}
	}

	if workers <= 1 || newHeight < workers {
		fill(0, newHeight)
	} else {
		parallel.ShardRows(newHeight, workers, fill)
	}

	return img.Reshape(out, newWidth, newHeight)
}

// bilinear samples the source at fractional coordinates (sx, sy) by blending
// the four surrounding pixels, first horizontally then vertically. When a
// neighbor is clamped onto the same column or row, its weight is already 0,
// so the blend degenerates to a 1-D or point lookup with no special casing.
func bilinear(src []pixel.Pixel, width, height int, sx, sy float64) pixel.Pixel {
	x0 := int(sx)
	y0 := int(sy)
	x1 := x0 + 1
	if x1 > width-1 {
		x1 = width - 1
	}
	y1 := y0 + 1
	if y1 > height-1 {
		y1 = height - 1
	}
	fx := float32(sx - float64(x0))
	fy := float32(sy - float64(y0))

	p00 := src[y0*width+x0]
	p10 := src[y0*width+x1]
	p01 := src[y1*width+x0]
	p11 := src[y1*width+x1]

	var out pixel.Pixel
	for c := 0; c < 4; c++ {
		top := p00[c]*(1-fx) + p10[c]*fx
		bottom := p01[c]*(1-fx) + p11[c]*fx
		out[c] = top*(1-fy) + bottom*fy
	}
	return out
}
