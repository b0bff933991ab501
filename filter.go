package easel

import "fmt"

// presentFilter is the color-grading pass applied during presentation.
type presentFilter struct {
	bmp      *Bitmap
	contrast float64
}

// ToggleFilter enables the presentation filter: every presented pixel is
// multiplied by bmp, stretched over the letterbox rectangle, and then
// contrast is applied around mid-grey:
//
//	rgb = (rgb*filter.rgb - 0.5)*contrast + 0.5
//
// Contrast 1 leaves colors unchanged. Calling ToggleFilter with the bitmap
// already in use disables the filter.
func (c *Canvas) ToggleFilter(bmp *Bitmap, contrast float64) {
	if bmp == nil {
		c.DisableFilter()
		return
	}
	if c.filter != nil && c.filter.bmp == bmp {
		c.DisableFilter()
		return
	}
	if bmp.Disposed() {
		panic(fmt.Sprintf("easel: ToggleFilter with disposed bitmap %d", bmp.tex))
	}
	c.filter = &presentFilter{bmp: bmp, contrast: contrast}
	logger.Debug("filter enabled", "bitmap", bmp.tex, "contrast", contrast)
}

// DisableFilter turns the presentation filter off.
func (c *Canvas) DisableFilter() {
	if c.filter != nil {
		logger.Debug("filter disabled")
	}
	c.filter = nil
}

// FilterEnabled reports whether a presentation filter is active.
func (c *Canvas) FilterEnabled() bool { return c.filter != nil }

// bindFilter switches to the filter shader and binds the filter bitmap on
// unit 1 with r as its frame. The frame is passed in window coordinates.
func (c *Canvas) bindFilter(r Rect) {
	c.ChangeShader(ShaderTexturedFilter)

	c.dev.ActiveTexture(TextureUnitFilter)
	c.filter.bmp.Bind()
	c.dev.ActiveTexture(TextureUnitColor)

	frameY := float64(c.screenH) - (r.Y + r.Height)
	c.activeShader.SetFilter(r.X, frameY, r.Width, r.Height, c.filter.contrast)
}

func (c *Canvas) unbindFilter() {
	c.dev.ActiveTexture(TextureUnitFilter)
	c.dev.BindTexture(0)
	c.dev.ActiveTexture(TextureUnitColor)
}
