package easel

import "math"

const loadingBarBorder = 4

// LoadingBarRect returns the rectangle of a full loading bar on a surface of
// the given virtual size: a quarter of the width wide, an eighth of that
// tall, centered.
func LoadingBarRect(virtualW, virtualH float64) Rect {
	w := virtualW / 4
	h := w / 8
	return Rect{X: virtualW/2 - w/2, Y: virtualH/2 - h/2, Width: w, Height: h}
}

// DrawLoadingScreen draws a black screen with a white-outlined progress bar
// filled to progress (clamped to [0, 1]). It must be called inside
// DrawToFramebuffer and leaves the flat-color shader active.
func (c *Canvas) DrawLoadingScreen(progress float64) {
	progress = clampUnit(progress)
	bar := LoadingBarRect(float64(c.virtualW), float64(c.virtualH))
	const b = loadingBarBorder

	c.transform.LoadIdentity().SetView(float64(c.virtualW), float64(c.virtualH)).Use()
	c.ChangeShader(ShaderNoTexture)

	c.SetColor(0, 0, 0, 1)
	c.Fill()

	c.ResetColor()
	c.FillRect(bar.X-b*2, bar.Y-b*2, bar.Width+b*4, bar.Height+b*4)
	c.SetColor(0, 0, 0, 1)
	c.FillRect(bar.X-b, bar.Y-b, bar.Width+b*2, bar.Height+b*2)

	c.ResetColor()
	c.FillRect(bar.X, bar.Y, math.Floor(bar.Width*progress), bar.Height)
}
