package easel

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestNewBitmapFromPixelsErrors(t *testing.T) {
	dev := NewSoftwareDevice(4, 4)
	tests := []struct {
		name    string
		pix     []byte
		w, h    int
		errPart string
	}{
		{"zero width", nil, 0, 4, "dimensions must be positive"},
		{"negative height", nil, 4, -1, "dimensions must be positive"},
		{"short pixels", make([]byte, 7), 2, 1, "got 7 bytes, want 8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBitmapFromPixels(dev, tt.pix, tt.w, tt.h, FilterNearest, false)
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("err = %v, want it to contain %q", err, tt.errPart)
			}
		})
	}
}

func TestNewBitmapFromPixelsNilIsTransparent(t *testing.T) {
	dev := NewSoftwareDevice(4, 4)
	bmp, err := NewBitmapFromPixels(dev, nil, 2, 2, FilterLinear, true)
	if err != nil {
		t.Fatal(err)
	}
	tex := dev.textures[bmp.ID()]
	for i, b := range tex.pix {
		if b != 0 {
			t.Fatalf("pix[%d] = %d, want 0", i, b)
		}
	}
	if !bmp.HasFramebuffer() {
		t.Error("HasFramebuffer = false")
	}
	if bmp.Width() != 2 || bmp.Height() != 2 || bmp.Filter() != FilterLinear {
		t.Errorf("bitmap = %dx%d filter %v", bmp.Width(), bmp.Height(), bmp.Filter())
	}
}

func TestNewBitmapFromImageConverts(t *testing.T) {
	dev := NewSoftwareDevice(4, 4)
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.Set(10, 10, color.RGBA{255, 0, 0, 255})
	src.Set(11, 10, color.RGBA{0, 0, 128, 128})

	bmp := NewBitmapFromImage(dev, src, FilterNearest)
	if bmp.Width() != 2 || bmp.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", bmp.Width(), bmp.Height())
	}
	if bmp.HasFramebuffer() {
		t.Error("image bitmaps should not have a framebuffer")
	}
	pix := dev.textures[bmp.ID()].pix
	if got := [4]byte(pix[0:4]); got != [4]byte{255, 0, 0, 255} {
		t.Errorf("pixel 0 = %v", got)
	}
	// Premultiplied RGBA converts to straight alpha.
	if got := [4]byte(pix[4:8]); got != [4]byte{0, 0, 255, 128} {
		t.Errorf("pixel 1 = %v, want straight alpha", got)
	}
}

func TestBitmapDrawToWithoutFramebufferIsNoop(t *testing.T) {
	dev := NewSoftwareDevice(4, 4)
	bmp, err := NewBitmapFromPixels(dev, nil, 2, 2, FilterNearest, false)
	if err != nil {
		t.Fatal(err)
	}
	ran := false
	bmp.DrawTo(func() { ran = true })
	if ran {
		t.Error("DrawTo ran fn on a bitmap without a framebuffer")
	}
}

func TestBitmapDrawToRestoresDefaultFramebuffer(t *testing.T) {
	dev := NewSoftwareDevice(4, 4)
	bmp, err := NewBitmapFromPixels(dev, nil, 2, 2, FilterNearest, true)
	if err != nil {
		t.Fatal(err)
	}
	var inside uint32
	bmp.DrawTo(func() { inside = dev.fb })
	if inside == 0 {
		t.Error("framebuffer not bound inside DrawTo")
	}
	if dev.fb != 0 {
		t.Errorf("fb = %d after DrawTo, want 0", dev.fb)
	}
}

func TestBitmapDisposeReleases(t *testing.T) {
	dev := NewSoftwareDevice(4, 4)
	bmp, err := NewBitmapFromPixels(dev, nil, 2, 2, FilterNearest, true)
	if err != nil {
		t.Fatal(err)
	}
	bmp.Dispose()
	bmp.Dispose()
	if _, ok := dev.textures[bmp.ID()]; ok {
		t.Error("texture still on device")
	}
	if len(dev.framebuffers) != 0 {
		t.Errorf("framebuffers = %d, want 0", len(dev.framebuffers))
	}
	expectPanic(t, "Bind", "disposed bitmap", bmp.Bind)

	ran := false
	bmp.DrawTo(func() { ran = true })
	if ran {
		t.Error("DrawTo ran fn on a disposed bitmap")
	}
}
