package main

import (
	"math"

	"github.com/phanxgames/easel"
)

// demoScene draws a few of each kind of primitive the canvas supports.
type demoScene struct {
	image  *easel.Bitmap // optional
	font   *easel.Bitmap // optional, 16x16 glyph atlas
	sprite *easel.Sprite
}

func newDemoScene(image, font *easel.Bitmap) *demoScene {
	s := &demoScene{image: image, font: font}
	if image != nil {
		s.sprite = easel.NewSprite(float64(image.Width())/2, float64(image.Height()))
	}
	return s
}

// update advances animations by step frames.
func (s *demoScene) update(step float64) {
	if s.sprite != nil {
		s.sprite.Animate(0, 0, 1, 30, step)
	}
}

// draw renders the scene at time t (in frames) in virtual coordinates.
func (s *demoScene) draw(c *easel.Canvas, t float64) {
	w, h := float64(c.Width()), float64(c.Height())

	c.Clear(0.08, 0.09, 0.13)
	c.ChangeShader(easel.ShaderNoTexture)

	// Color bars along the top.
	bars := []easel.Color{
		{R: 0.9, G: 0.3, B: 0.3, A: 1},
		{R: 0.9, G: 0.8, B: 0.3, A: 1},
		{R: 0.3, G: 0.8, B: 0.4, A: 1},
		{R: 0.3, G: 0.5, B: 0.9, A: 1},
	}
	bw := w / float64(len(bars))
	for i, col := range bars {
		c.SetColor(col.R, col.G, col.B, col.A)
		c.FillRect(float64(i)*bw, 0, bw, h/16)
	}

	// A square spinning about its centre.
	tr := c.Transform()
	tr.Push().Translate(w/4, h/2).Rotate(t*math.Pi/120).Translate(-h/8, -h/8).Use()
	c.SetColor(0.95, 0.95, 0.95, 1)
	c.FillRect(0, 0, h/4, h/4)
	tr.Pop().Use()

	// A lit panel with the light circling over it.
	c.ChangeShader(easel.ShaderNoTextureLight)
	lx := w*3/4 + math.Cos(t/40)*w/10
	ly := h/2 + math.Sin(t/40)*h/10
	c.SetLight(lx, ly, h/4, 1, 0.15)
	c.SetColor(0.9, 0.7, 0.4, 1)
	c.FillRect(w/2+w/16, h/4, w/2-w/8, h/2)
	c.ClearLight()

	if s.image != nil {
		c.ChangeShader(easel.ShaderTextured)
		c.ResetColor()
		size := h / 6
		c.DrawBitmap(s.image, w/2-size/2, h-size*1.5, size, size)
		if s.sprite != nil {
			c.DrawSprite(s.sprite, s.image, w/2+size, h-size*1.5, size, size, easel.FlipHorizontal)
		}
	}

	if s.font != nil {
		c.ChangeShader(easel.ShaderTextured)
		c.ResetColor()
		c.DrawText(s.font, "EASEL", w/2, h/8, easel.TextOptions{
			XOff:      2,
			Align:     easel.TextAlignCenter,
			ScaleX:    2,
			ScaleY:    2,
			Wave:      t / 10,
			Amplitude: 4,
			Period:    0.6,
		})
	}

	c.ChangeShader(easel.ShaderNoTexture)
	c.ResetColor()
}
