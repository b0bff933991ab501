package easel

import (
	"image/color"
	"testing"
)

func TestToggleFilterSameBitmapDisables(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4, 4, 4)
	bmp := solidBitmap(t, c, 1, 1, white, FilterNearest)

	c.ToggleFilter(bmp, 1)
	if !c.FilterEnabled() {
		t.Fatal("FilterEnabled = false after ToggleFilter")
	}
	c.ToggleFilter(bmp, 1)
	if c.FilterEnabled() {
		t.Error("toggling the active bitmap should disable the filter")
	}
}

func TestToggleFilterOtherBitmapReplaces(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4, 4, 4)
	a := solidBitmap(t, c, 1, 1, white, FilterNearest)
	b := solidBitmap(t, c, 1, 1, red, FilterNearest)

	c.ToggleFilter(a, 1)
	c.ToggleFilter(b, 1.5)
	if !c.FilterEnabled() || c.filter.bmp != b || c.filter.contrast != 1.5 {
		t.Errorf("filter = %+v, want b with contrast 1.5", c.filter)
	}
	c.ToggleFilter(nil, 1)
	if c.FilterEnabled() {
		t.Error("nil bitmap should disable the filter")
	}
}

func TestToggleFilterDisposedPanics(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4, 4, 4)
	bmp := solidBitmap(t, c, 1, 1, white, FilterNearest)
	c.DestroyBitmap(bmp)
	expectPanic(t, "ToggleFilter", "disposed bitmap", func() { c.ToggleFilter(bmp, 1) })
}

func TestFilterMultipliesPresentedFrame(t *testing.T) {
	c, dev := newTestCanvas(t, 4, 4, 4, 4)
	filter := solidBitmap(t, c, 1, 1, color.NRGBA{255, 0, 255, 255}, FilterNearest)
	c.ToggleFilter(filter, 1)

	c.Frame(func(c *Canvas) {
		c.ChangeShader(ShaderNoTexture)
		c.SetColor(0.75, 0.25, 0.5, 1)
		c.Fill()
	})
	want := color.NRGBA{191, 0, 128, 255}
	assertPixel(t, dev, 0, 0, want)
	assertPixel(t, dev, 3, 3, want)
}

func TestFilterContrast(t *testing.T) {
	c, dev := newTestCanvas(t, 4, 4, 4, 4)
	c.ToggleFilter(solidBitmap(t, c, 1, 1, white, FilterNearest), 2)

	c.Frame(func(c *Canvas) {
		c.ChangeShader(ShaderNoTexture)
		c.SetColor(1, 0, 0, 1)
		c.Fill()
	})
	// (1-0.5)*2+0.5 clamps to 1, (0-0.5)*2+0.5 clamps to 0.
	assertPixel(t, dev, 2, 2, red)
}

func TestFilterFollowsLetterbox(t *testing.T) {
	// 2x1 filter: left half red, right half blue, stretched over the
	// letterboxed image (columns 2..5 of an 8x4 screen).
	c, dev := newTestCanvas(t, 4, 4, 8, 4)
	pix := []byte{255, 0, 0, 255, 0, 0, 255, 255}
	filter, err := c.NewBitmap(pix, 2, 1, FilterNearest)
	if err != nil {
		t.Fatal(err)
	}
	c.ToggleFilter(filter, 1)
	c.Frame(func(c *Canvas) {
		c.ChangeShader(ShaderNoTexture)
		c.SetColor(1, 1, 1, 1)
		c.Fill()
	})
	assertPixel(t, dev, 2, 1, red)
	assertPixel(t, dev, 3, 2, red)
	assertPixel(t, dev, 4, 1, blue)
	assertPixel(t, dev, 5, 2, blue)
	assertPixel(t, dev, 0, 0, black)
}

func TestFilterPresentationRestoresState(t *testing.T) {
	c, dev := newTestCanvas(t, 4, 4, 4, 4)
	c.ToggleFilter(solidBitmap(t, c, 1, 1, white, FilterNearest), 1)
	c.Frame(func(c *Canvas) {
		c.ChangeShader(ShaderNoTexture)
	})
	if c.ActiveShader() != ShaderNoTexture {
		t.Errorf("ActiveShader = %v, want %v", c.ActiveShader(), ShaderNoTexture)
	}
	if dev.units[TextureUnitFilter] != 0 {
		t.Errorf("filter unit = %d after presentation, want 0", dev.units[TextureUnitFilter])
	}
	if dev.unit != TextureUnitColor {
		t.Errorf("active unit = %d, want %d", dev.unit, TextureUnitColor)
	}
}
