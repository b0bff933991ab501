package easel

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Bitmap is a texture on a Device, optionally paired with a framebuffer so
// it can be drawn into. Bitmaps never change size after creation.
type Bitmap struct {
	dev      Device
	tex      uint32
	fb       uint32
	w, h     int
	filter   FilterMode
	disposed bool
}

// NewBitmapFromImage uploads a decoded image. Width and height come from the
// image bounds. The bitmap has no framebuffer.
func NewBitmapFromImage(dev Device, img image.Image, filter FilterMode) *Bitmap {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != 4*b.Dx() || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Bitmap{
		dev:    dev,
		tex:    dev.CreateTexture(b.Dx(), b.Dy(), nrgba.Pix, filter),
		w:      b.Dx(),
		h:      b.Dy(),
		filter: filter,
	}
}

// NewBitmapFromPixels uploads w x h straight-alpha RGBA pixels, first row
// first. A nil pix creates a transparent bitmap. With makeFramebuffer the
// bitmap also becomes a render target usable with DrawTo.
func NewBitmapFromPixels(dev Device, pix []byte, w, h int, filter FilterMode, makeFramebuffer bool) (*Bitmap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("bitmap size %dx%d: dimensions must be positive", w, h)
	}
	if pix != nil && len(pix) != 4*w*h {
		return nil, fmt.Errorf("bitmap pixels: got %d bytes, want %d for %dx%d", len(pix), 4*w*h, w, h)
	}
	b := &Bitmap{
		dev:    dev,
		tex:    dev.CreateTexture(w, h, pix, filter),
		w:      w,
		h:      h,
		filter: filter,
	}
	if makeFramebuffer {
		b.fb = dev.CreateFramebuffer(b.tex)
	}
	return b, nil
}

// ID returns the texture handle. Handles are never reused, so the ID
// identifies the bitmap for binding caches.
func (b *Bitmap) ID() uint32 { return b.tex }

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.w }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.h }

// Filter returns the sampling filter.
func (b *Bitmap) Filter() FilterMode { return b.filter }

// HasFramebuffer reports whether the bitmap can be drawn into.
func (b *Bitmap) HasFramebuffer() bool { return b.fb != 0 }

// Disposed reports whether Dispose has been called.
func (b *Bitmap) Disposed() bool { return b.disposed }

// Bind binds the texture to the device's active texture unit. Binding a
// disposed bitmap panics.
func (b *Bitmap) Bind() {
	if b.disposed {
		panic(fmt.Sprintf("easel: Bitmap.Bind on disposed bitmap %d", b.tex))
	}
	b.dev.BindTexture(b.tex)
}

// DrawTo redirects drawing into the bitmap for the duration of fn, then
// restores the default framebuffer. Bitmaps without a framebuffer ignore the
// call and fn does not run. Inside a frame use Canvas.DrawToBitmap, which
// restores the previous render target instead.
func (b *Bitmap) DrawTo(fn func()) {
	if b.fb == 0 || b.disposed {
		return
	}
	b.dev.BindFramebuffer(b.fb)
	defer b.dev.BindFramebuffer(0)
	fn()
}

// Dispose releases the texture and framebuffer. Calling it twice is a no-op.
func (b *Bitmap) Dispose() {
	if b.disposed {
		return
	}
	if b.fb != 0 {
		b.dev.DeleteFramebuffer(b.fb)
	}
	b.dev.DeleteTexture(b.tex)
	b.disposed = true
}
