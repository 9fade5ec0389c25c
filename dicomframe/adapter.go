// Package dicomframe bridges go-dicom pixel data and the pixel.Image buffer.
//
// DICOM color frames are one real-world source of the flat interleaved bytes
// the core consumes: a decoded RGB or RGBA frame with 8 bits per sample maps
// directly onto pixel.FromBytes input. Multi-frame objects are addressed one
// frame at a time; the core itself stays single-image.
package dicomframe

import (
	"errors"
	"fmt"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/DianaNites/embedded-image/pixel"
)

// ErrUnsupportedFrame is returned when a frame's layout cannot be mapped onto
// an RGBA float buffer (wrong bit depth, planar data, or a non-RGB
// photometric interpretation).
var ErrUnsupportedFrame = errors.New("unsupported frame layout")

// FromPixelData decodes one frame of pd into a new Image tagged with the
// given color space.
//
// The frame must be 8 bits per sample, interleaved (PlanarConfiguration 0),
// photometric interpretation RGB, with 3 (RGB) or 4 (RGBA) samples per pixel.
// Three-sample frames get an opaque alpha channel.
func FromPixelData(pd imagetypes.PixelData, frameIndex int, space pixel.Space) (*pixel.Image, error) {
	if pd == nil {
		return nil, fmt.Errorf("pixel data cannot be nil")
	}
	info := pd.GetFrameInfo()
	if info == nil {
		return nil, fmt.Errorf("pixel data has no frame info")
	}
	if err := checkFrameInfo(info); err != nil {
		return nil, err
	}

	frame, err := pd.GetFrame(frameIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
	}

	width, height := int(info.Width), int(info.Height)
	raw := frame
	if info.SamplesPerPixel == 3 {
		// Widening a truncated frame would silently drop trailing bytes, so
		// the length check happens before the conversion to RGBA.
		if len(frame) != width*height*3 {
			return nil, fmt.Errorf("frame %d does not match %dx%d: %w", frameIndex, width, height, pixel.ErrInvalidLength)
		}
		raw = expandRGB(frame)
	}

	img, err := pixel.FromBytes(raw, width, height, space)
	if err != nil {
		return nil, fmt.Errorf("frame %d does not match %dx%d: %w", frameIndex, width, height, err)
	}
	return img, nil
}

// ToPixelData re-quantizes img to 8-bit samples and appends it to pd as a new
// frame. If pd carries frame info, the image shape must match it; frames are
// written with 4 samples per pixel, or 3 with the alpha channel dropped when
// the frame info declares SamplesPerPixel 3.
func ToPixelData(img *pixel.Image, pd imagetypes.PixelData) error {
	if pd == nil {
		return fmt.Errorf("pixel data cannot be nil")
	}

	samples := 4
	if info := pd.GetFrameInfo(); info != nil {
		if err := checkFrameInfo(info); err != nil {
			return err
		}
		if int(info.Width) != img.Width() || int(info.Height) != img.Height() {
			return fmt.Errorf("image is %dx%d but frame info declares %dx%d",
				img.Width(), img.Height(), info.Width, info.Height)
		}
		samples = int(info.SamplesPerPixel)
	}

	raw := img.Bytes()
	if samples == 3 {
		raw = dropAlpha(raw)
	}
	if err := pd.AddFrame(raw); err != nil {
		return fmt.Errorf("failed to add frame: %w", err)
	}
	return nil
}

func checkFrameInfo(info *imagetypes.FrameInfo) error {
	if info.BitsAllocated != 8 {
		return fmt.Errorf("%d bits allocated: %w", info.BitsAllocated, ErrUnsupportedFrame)
	}
	if info.PlanarConfiguration != 0 {
		return fmt.Errorf("planar configuration %d: %w", info.PlanarConfiguration, ErrUnsupportedFrame)
	}
	if info.PhotometricInterpretation != "RGB" {
		return fmt.Errorf("photometric interpretation %q: %w", info.PhotometricInterpretation, ErrUnsupportedFrame)
	}
	if info.SamplesPerPixel != 3 && info.SamplesPerPixel != 4 {
		return fmt.Errorf("%d samples per pixel: %w", info.SamplesPerPixel, ErrUnsupportedFrame)
	}
	return nil
}

// expandRGB widens interleaved RGB bytes to RGBA with opaque alpha.
func expandRGB(rgb []byte) []byte {
	count := len(rgb) / 3
	out := make([]byte, count*4)
	for i := 0; i < count; i++ {
		out[i*4] = rgb[i*3]
		out[i*4+1] = rgb[i*3+1]
		out[i*4+2] = rgb[i*3+2]
		out[i*4+3] = 255
	}
	return out
}

// dropAlpha narrows interleaved RGBA bytes to RGB.
func dropAlpha(rgba []byte) []byte {
	count := len(rgba) / 4
	out := make([]byte, count*3)
	for i := 0; i < count; i++ {
		out[i*3] = rgba[i*4]
		out[i*3+1] = rgba[i*4+1]
		out[i*3+2] = rgba[i*4+2]
	}
	return out
}
