package dicomframe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/DianaNites/embedded-image/pixel"
)

// memoryPixelData is a minimal in-memory imagetypes.PixelData for tests.
type memoryPixelData struct {
	frames    [][]byte
	frameInfo *imagetypes.FrameInfo
}

func (p *memoryPixelData) GetFrame(frameIndex int) ([]byte, error) {
	if frameIndex < 0 || frameIndex >= len(p.frames) {
		return nil, errors.New("frame index out of range")
	}
	return p.frames[frameIndex], nil
}

func (p *memoryPixelData) AddFrame(frameData []byte) error {
	p.frames = append(p.frames, frameData)
	return nil
}

func (p *memoryPixelData) FrameCount() int {
	return len(p.frames)
}

func (p *memoryPixelData) GetFrameInfo() *imagetypes.FrameInfo {
	return p.frameInfo
}

func (p *memoryPixelData) IsEncapsulated() bool {
	return false
}

func rgbaFrameInfo(width, height int) *imagetypes.FrameInfo {
	return &imagetypes.FrameInfo{
		Width:                     uint16(width),
		Height:                    uint16(height),
		BitsAllocated:             8,
		BitsStored:                8,
		HighBit:                   7,
		SamplesPerPixel:           4,
		PixelRepresentation:       0,
		PlanarConfiguration:       0,
		PhotometricInterpretation: "RGB",
	}
}

func rgbFrameInfo(width, height int) *imagetypes.FrameInfo {
	fi := rgbaFrameInfo(width, height)
	fi.SamplesPerPixel = 3
	return fi
}

func TestFromPixelDataRGBA(t *testing.T) {
	pd := &memoryPixelData{frameInfo: rgbaFrameInfo(2, 1)}
	if err := pd.AddFrame([]byte{255, 0, 0, 255, 0, 255, 0, 128}); err != nil {
		t.Fatalf("AddFrame() failed: %v", err)
	}

	img, err := FromPixelData(pd, 0, pixel.SRGB)
	if err != nil {
		t.Fatalf("FromPixelData() failed: %v", err)
	}
	if img.Width() != 2 || img.Height() != 1 {
		t.Errorf("resolution = %dx%d, want 2x1", img.Width(), img.Height())
	}
	if img.Space() != pixel.SRGB {
		t.Errorf("space = %v, want sRGB", img.Space())
	}
	if got, want := img.Pixels()[0], (pixel.Pixel{1, 0, 0, 1}); got != want {
		t.Errorf("pixel 0 = %v, want %v", got, want)
	}
	if got := img.Pixels()[1][3]; got != float32(128)/255 {
		t.Errorf("pixel 1 alpha = %v, want %v", got, float32(128)/255)
	}
}

func TestFromPixelDataRGBGetsOpaqueAlpha(t *testing.T) {
	pd := &memoryPixelData{frameInfo: rgbFrameInfo(2, 1)}
	if err := pd.AddFrame([]byte{255, 0, 0, 0, 255, 0}); err != nil {
		t.Fatalf("AddFrame() failed: %v", err)
	}

	img, err := FromPixelData(pd, 0, pixel.SRGB)
	if err != nil {
		t.Fatalf("FromPixelData() failed: %v", err)
	}
	for i, p := range img.Pixels() {
		if p[3] != 1 {
			t.Errorf("pixel %d alpha = %v, want 1", i, p[3])
		}
	}
}

func TestFromPixelDataRejectsUnsupportedLayouts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*imagetypes.FrameInfo)
	}{
		{"16-bit", func(fi *imagetypes.FrameInfo) { fi.BitsAllocated = 16 }},
		{"planar", func(fi *imagetypes.FrameInfo) { fi.PlanarConfiguration = 1 }},
		{"monochrome", func(fi *imagetypes.FrameInfo) { fi.PhotometricInterpretation = "MONOCHROME2" }},
		{"palette", func(fi *imagetypes.FrameInfo) { fi.SamplesPerPixel = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fi := rgbaFrameInfo(2, 1)
			tt.mutate(fi)
			pd := &memoryPixelData{frameInfo: fi}
			if err := pd.AddFrame(make([]byte, 8)); err != nil {
				t.Fatalf("AddFrame() failed: %v", err)
			}

			_, err := FromPixelData(pd, 0, pixel.SRGB)
			if !errors.Is(err, ErrUnsupportedFrame) {
				t.Errorf("FromPixelData() error = %v, want ErrUnsupportedFrame", err)
			}
		})
	}
}

func TestFromPixelDataShortFrame(t *testing.T) {
	pd := &memoryPixelData{frameInfo: rgbaFrameInfo(2, 2)}
	if err := pd.AddFrame(make([]byte, 10)); err != nil {
		t.Fatalf("AddFrame() failed: %v", err)
	}

	_, err := FromPixelData(pd, 0, pixel.SRGB)
	if !errors.Is(err, pixel.ErrInvalidLength) {
		t.Errorf("FromPixelData() error = %v, want ErrInvalidLength", err)
	}
}

func TestFromPixelDataMalformedRGBFrame(t *testing.T) {
	// A 2x2 RGB frame is exactly 12 bytes. Anything else must be rejected
	// before the RGBA widening, which rounds down and would otherwise hide
	// the mismatch.
	tests := []struct {
		name string
		size int
	}{
		{"truncated", 11},
		{"not a multiple of 3", 13},
		{"whole pixel short", 9},
		{"oversized", 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pd := &memoryPixelData{frameInfo: rgbFrameInfo(2, 2)}
			if err := pd.AddFrame(make([]byte, tt.size)); err != nil {
				t.Fatalf("AddFrame() failed: %v", err)
			}

			_, err := FromPixelData(pd, 0, pixel.SRGB)
			if !errors.Is(err, pixel.ErrInvalidLength) {
				t.Errorf("FromPixelData() error = %v, want ErrInvalidLength", err)
			}
		})
	}
}

func TestFromPixelDataMissingFrame(t *testing.T) {
	pd := &memoryPixelData{frameInfo: rgbaFrameInfo(2, 1)}
	if _, err := FromPixelData(pd, 3, pixel.SRGB); err == nil {
		t.Error("FromPixelData() with out-of-range frame index succeeded")
	}
}

func TestToPixelDataRoundTrip(t *testing.T) {
	src := []byte{255, 0, 0, 255, 0, 255, 0, 128, 0, 0, 255, 64, 255, 255, 255, 255}
	pd := &memoryPixelData{frameInfo: rgbaFrameInfo(2, 2)}
	if err := pd.AddFrame(src); err != nil {
		t.Fatalf("AddFrame() failed: %v", err)
	}

	img, err := FromPixelData(pd, 0, pixel.SRGB)
	if err != nil {
		t.Fatalf("FromPixelData() failed: %v", err)
	}
	if err := ToPixelData(img, pd); err != nil {
		t.Fatalf("ToPixelData() failed: %v", err)
	}

	if pd.FrameCount() != 2 {
		t.Fatalf("FrameCount() = %d, want 2", pd.FrameCount())
	}
	frame, err := pd.GetFrame(1)
	if err != nil {
		t.Fatalf("GetFrame() failed: %v", err)
	}
	if !bytes.Equal(frame, src) {
		t.Errorf("round-trip frame = %v, want %v", frame, src)
	}
}

func TestToPixelDataDropsAlphaForRGB(t *testing.T) {
	pd := &memoryPixelData{frameInfo: rgbFrameInfo(2, 1)}
	img, err := pixel.FromBytes([]byte{255, 0, 0, 255, 0, 255, 0, 128}, 2, 1, pixel.SRGB)
	if err != nil {
		t.Fatalf("FromBytes() failed: %v", err)
	}

	if err := ToPixelData(img, pd); err != nil {
		t.Fatalf("ToPixelData() failed: %v", err)
	}
	frame, err := pd.GetFrame(0)
	if err != nil {
		t.Fatalf("GetFrame() failed: %v", err)
	}
	want := []byte{255, 0, 0, 0, 255, 0}
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = %v, want %v", frame, want)
	}
}

func TestToPixelDataShapeMismatch(t *testing.T) {
	pd := &memoryPixelData{frameInfo: rgbaFrameInfo(4, 4)}
	img, err := pixel.FromBytes(make([]byte, 16), 2, 2, pixel.SRGB)
	if err != nil {
		t.Fatalf("FromBytes() failed: %v", err)
	}

	if err := ToPixelData(img, pd); err == nil {
		t.Error("ToPixelData() with mismatched shape succeeded")
	}
}
