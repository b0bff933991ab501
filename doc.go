// Package easel is the rendering core of a 2D game built on [Ebitengine].
//
// A [Canvas] draws through a [Device], an immediate-mode GPU API in the shape
// of GL: programs with uniform locations, texture units, framebuffers, meshes
// and indexed draws. Two devices ship with the package: [EbitenDevice], which
// runs Kage shaders on Ebitengine, and [SoftwareDevice], a CPU rasterizer used
// for headless rendering and tests.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives a
// [Game] at a fixed step:
//
//	type game struct{ font *easel.Bitmap }
//
//	func (g *game) Update(ev *easel.Event) error { return nil }
//
//	func (g *game) Redraw(c *easel.Canvas) {
//		c.Clear(0.2, 0.2, 0.3)
//		c.ChangeShader(easel.ShaderTextured)
//		c.DrawText(g.font, "HELLO", 512, 32, easel.TextOptions{Align: easel.TextAlignCenter})
//	}
//
//	easel.Run(&game{font: font}, easel.RunConfig{Title: "Demo"})
//
// # Virtual resolution
//
// Games draw in a fixed virtual resolution (1024x768 by default). Each frame
// is drawn into an offscreen framebuffer with [Canvas.DrawToFramebuffer] and
// presented letterboxed with [Canvas.DrawFramebufferTexture]; [Canvas.Frame]
// does both. [Letterbox] computes the presentation rectangle.
//
// # State caching
//
// The canvas remembers the active shader, mesh, texture and color and skips
// redundant device calls. Switching shaders with [Canvas.ChangeShader]
// reapplies the transform stack and color, since [ShaderProgram.Use] resets
// every per-draw uniform. [Canvas.Stats] reports the device calls issued.
//
// # Transforms
//
// [Transforms] is a push/pop stack of 3x3 affine matrices plus a view
// projection. Every Push must be matched by a Pop within the frame; popping
// the last matrix panics.
//
// [Ebitengine]: https://ebitengine.org
package easel
