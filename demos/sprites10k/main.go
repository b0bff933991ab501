// sprites10k spawns 10,000 sprites that rotate, scale, fade, and bounce
// around the screen simultaneously. A stress test for the canvas state cache:
// every sprite shares one texture and the unit quad, so only the per-draw
// uniforms change between draws.
package main

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/phanxgames/easel"
)

const (
	screenW    = 1280
	screenH    = 720
	count      = 10_000
	spriteSize = 16
)

type sprite struct {
	x, y       float64
	dx, dy     float64
	angle      float64
	rotSpeed   float64
	scale      float64
	alphaPhase float64
	alphaSpeed float64
	col        easel.Color
}

type game struct {
	sprites []sprite
	tex     *easel.Bitmap
	frames  int
}

// newDiamond generates a white diamond with soft edges.
func newDiamond(c *easel.Canvas) *easel.Bitmap {
	pix := make([]byte, spriteSize*spriteSize*4)
	half := float64(spriteSize) / 2
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			d := math.Abs(float64(x)+0.5-half) + math.Abs(float64(y)+0.5-half)
			a := math.Max(0, math.Min(1, half-d))
			i := (y*spriteSize + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = 255, 255, 255, byte(a*255)
		}
	}
	bmp, err := c.NewBitmap(pix, spriteSize, spriteSize, easel.FilterLinear)
	if err != nil {
		log.Fatalf("sprite texture: %v", err)
	}
	return bmp
}

func newGame() *game {
	g := &game{sprites: make([]sprite, count)}
	for i := range g.sprites {
		g.sprites[i] = sprite{
			x:          rand.Float64() * screenW,
			y:          rand.Float64() * screenH,
			dx:         (rand.Float64()*2 - 1) * 3,
			dy:         (rand.Float64()*2 - 1) * 3,
			rotSpeed:   (rand.Float64()*2 - 1) * 0.1,
			scale:      0.5 + rand.Float64()*1.5,
			alphaPhase: rand.Float64() * 2 * math.Pi,
			alphaSpeed: 0.02 + rand.Float64()*0.05,
			col: easel.Color{
				R: 0.4 + rand.Float64()*0.6,
				G: 0.4 + rand.Float64()*0.6,
				B: 0.4 + rand.Float64()*0.6,
				A: 1,
			},
		}
	}
	return g
}

func (g *game) Update(ev *easel.Event) error {
	g.frames++
	for i := range g.sprites {
		s := &g.sprites[i]
		s.x += s.dx * ev.Step
		s.y += s.dy * ev.Step
		if s.x < 0 || s.x > screenW {
			s.dx = -s.dx
		}
		if s.y < 0 || s.y > screenH {
			s.dy = -s.dy
		}
		s.angle += s.rotSpeed * ev.Step
		s.alphaPhase += s.alphaSpeed * ev.Step
	}
	if g.frames%300 == 0 {
		st := ev.Canvas.Stats()
		log.Printf("draws=%d texture binds=%d mesh binds=%d", st.DrawCalls, st.TextureBinds, st.MeshBinds)
	}
	return nil
}

func (g *game) Redraw(c *easel.Canvas) {
	c.Clear(0.05, 0.05, 0.08)
	c.ChangeShader(easel.ShaderTextured)

	tr := c.Transform()
	half := float64(spriteSize) / 2
	for i := range g.sprites {
		s := &g.sprites[i]
		alpha := 0.5 + 0.5*math.Sin(s.alphaPhase)
		c.SetColor(s.col.R, s.col.G, s.col.B, alpha)

		tr.Push()
		tr.Translate(s.x, s.y)
		tr.Rotate(s.angle)
		tr.Scale(s.scale, s.scale)
		tr.Use()
		c.DrawBitmap(g.tex, -half, -half, spriteSize, spriteSize)
		tr.Pop()
	}
	tr.Use()
	c.ResetColor()
}

func main() {
	g := newGame()
	if err := easel.Run(g, easel.RunConfig{
		Title:         "Easel - 10k Sprites",
		WindowWidth:   screenW,
		WindowHeight:  screenH,
		VirtualWidth:  screenW,
		VirtualHeight: screenH,
		OnLoad: func(ev *easel.Event) {
			g.tex = newDiamond(ev.Canvas)
		},
	}); err != nil {
		log.Fatal(err)
	}
}
