package easel

import "fmt"

// LoadState reports whether asset loading has finished. While it has not,
// Canvas.BindMesh binds without recording the mesh as active, so the quad
// used by the loading screen is never mistaken for a mesh created mid-load.
type LoadState interface {
	HasLoaded() bool
}

// CanvasConfig configures NewCanvas.
type CanvasConfig struct {
	// VirtualWidth and VirtualHeight are the fixed logical resolution the game
	// draws in. Zero uses DefaultVirtualWidth / DefaultVirtualHeight.
	VirtualWidth, VirtualHeight int
	// ScreenWidth and ScreenHeight are the initial physical surface size.
	// Zero uses the virtual size.
	ScreenWidth, ScreenHeight int
	// LoadState supplies the asset-loading phase. Nil means loaded.
	LoadState LoadState
	// Debug logs frame statistics after each presented frame.
	Debug bool
}

// Canvas is the drawing façade. It owns one program per ShaderKind, the unit
// quad, the virtual-resolution framebuffer and the transform stack, and
// caches the active shader, mesh, texture and color so that redundant device
// calls are skipped.
//
// A frame is drawn with DrawToFramebuffer followed by DrawFramebufferTexture
// (or Frame, which does both). Canvas is not safe for concurrent use.
type Canvas struct {
	dev   Device
	stats *statsDevice

	shaders      [shaderKindCount]*ShaderProgram
	activeShader *ShaderProgram

	activeMesh    uint32
	activeTexture uint32
	activeColor   Color
	light         *pointLight

	rect        *Mesh
	framebuffer *Bitmap
	transform   *Transforms
	// target is the bitmap drawing is redirected into; nil is the physical
	// surface.
	target *Bitmap

	virtualW, virtualH int
	screenW, screenH   int

	load   LoadState
	filter *presentFilter
	debug  bool

	screenshotQueue []string
	screenshotDir   string
}

// pointLight is a light in window coordinates.
type pointLight struct {
	x, y, radius, intensity, ambient float64
}

// NewCanvas compiles the built-in shaders on dev and creates the unit quad
// and the virtual-resolution framebuffer. It panics if a built-in shader
// fails to compile.
func NewCanvas(dev Device, cfg CanvasConfig) *Canvas {
	vw, vh := cfg.VirtualWidth, cfg.VirtualHeight
	if vw <= 0 {
		vw = DefaultVirtualWidth
	}
	if vh <= 0 {
		vh = DefaultVirtualHeight
	}
	sw, sh := cfg.ScreenWidth, cfg.ScreenHeight
	if sw <= 0 || sh <= 0 {
		sw, sh = vw, vh
	}

	stats := &statsDevice{Device: dev}
	c := &Canvas{
		dev:         stats,
		stats:       stats,
		activeColor: ColorWhite,
		virtualW:    vw,
		virtualH:    vh,
		load:        cfg.LoadState,
		debug:       cfg.Debug,
	}
	c.Resize(sw, sh)
	c.dev.ActiveTexture(TextureUnitColor)

	fb, err := NewBitmapFromPixels(c.dev, nil, vw, vh, FilterLinear, true)
	if err != nil {
		panic("easel: framebuffer: " + err.Error())
	}
	c.framebuffer = fb

	for k := ShaderKind(0); k < shaderKindCount; k++ {
		c.shaders[k] = mustBuildShader(c.dev, k)
	}
	c.activeShader = c.shaders[ShaderTextured]
	c.activeShader.Use()

	c.rect = newUnitQuad(c.dev)
	c.rect.Bind()

	c.transform = newTransforms()
	c.transform.setShader(c.activeShader)

	logger.Info("canvas created", "virtual", fmt.Sprintf("%dx%d", vw, vh), "screen", fmt.Sprintf("%dx%d", sw, sh))
	return c
}

// Width returns the virtual width.
func (c *Canvas) Width() int { return c.virtualW }

// Height returns the virtual height.
func (c *Canvas) Height() int { return c.virtualH }

// ScreenSize returns the physical surface size.
func (c *Canvas) ScreenSize() (w, h int) { return c.screenW, c.screenH }

// Transform returns the transform stack.
func (c *Canvas) Transform() *Transforms { return c.transform }

// Framebuffer returns the virtual-resolution render target.
func (c *Canvas) Framebuffer() *Bitmap { return c.framebuffer }

// Device returns the device the canvas draws with.
func (c *Canvas) Device() Device { return c.dev }

// ActiveShader returns the kind of the active shader.
func (c *Canvas) ActiveShader() ShaderKind { return c.activeShader.kind }

// ActiveColor returns the color reapplied on shader switches.
func (c *Canvas) ActiveColor() Color { return c.activeColor }

// SetLoadState replaces the loading-phase source. Nil means loaded.
func (c *Canvas) SetLoadState(ls LoadState) { c.load = ls }

func (c *Canvas) loaded() bool {
	return c.load == nil || c.load.HasLoaded()
}

// Resize tracks a new physical surface size. The virtual resolution is
// unaffected. Call it between frames.
func (c *Canvas) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW, c.screenH = w, h
	c.dev.ResizeSurface(w, h)
	if c.target == nil {
		c.dev.Viewport(0, 0, w, h)
	}
	logger.Debug("surface resized", "width", w, "height", h)
}

// Clear fills the bound render target with an opaque color.
func (c *Canvas) Clear(r, g, b float64) {
	c.dev.ClearColor(float32(r), float32(g), float32(b), 1)
	c.dev.Clear()
}

// BindMesh binds m unless it is already the active mesh. While assets are
// loading the bind is issued but not cached.
func (c *Canvas) BindMesh(m *Mesh) {
	if m.id == c.activeMesh {
		return
	}
	m.Bind()
	if c.loaded() {
		c.activeMesh = m.id
	}
}

// RebindMesh binds m regardless of the cache.
func (c *Canvas) RebindMesh(m *Mesh) {
	m.Bind()
	if c.loaded() {
		c.activeMesh = m.id
	}
}

// BindTexture binds bmp to texture unit 0 unless it is already bound there.
// Bitmaps are compared by texture handle. A nil bmp unbinds the unit.
func (c *Canvas) BindTexture(bmp *Bitmap) {
	if bmp == nil {
		c.unbindTexture()
		return
	}
	if bmp.tex == c.activeTexture {
		return
	}
	bmp.Bind()
	c.activeTexture = bmp.tex
}

// RebindTexture binds bmp regardless of the cache.
func (c *Canvas) RebindTexture(bmp *Bitmap) {
	bmp.Bind()
	c.activeTexture = bmp.tex
}

func (c *Canvas) unbindTexture() {
	c.dev.BindTexture(0)
	c.activeTexture = 0
}

// ChangeShader makes kind the active shader. Switching reapplies the
// transform stack, the active color and the light, since Use resets them.
func (c *Canvas) ChangeShader(kind ShaderKind) {
	if kind >= shaderKindCount {
		panic(fmt.Sprintf("easel: unknown shader kind %v", kind))
	}
	c.useShader(c.shaders[kind])
}

func (c *Canvas) useShader(s *ShaderProgram) {
	if s == nil || s == c.activeShader {
		return
	}
	c.activeShader = s
	s.Use()

	c.transform.setShader(s)
	c.transform.Use()

	col := c.activeColor
	s.SetColor(col.R, col.G, col.B, col.A)
	if l := c.light; l != nil {
		s.SetLight(l.x, l.y, l.radius, l.intensity, l.ambient)
	}
}

// Shader returns the program of the given kind.
func (c *Canvas) Shader(kind ShaderKind) *ShaderProgram {
	if kind >= shaderKindCount {
		return nil
	}
	return c.shaders[kind]
}

// SetColor sets the tint of subsequent draws.
func (c *Canvas) SetColor(r, g, b, a float64) {
	c.activeShader.SetColor(r, g, b, a)
	c.activeColor = Color{r, g, b, a}
}

// ResetColor sets the tint back to opaque white.
func (c *Canvas) ResetColor() {
	c.SetColor(1, 1, 1, 1)
}

// SetLight places a point light for the lit shaders. x and y are virtual
// coordinates of the surface currently drawn to.
func (c *Canvas) SetLight(x, y, radius, intensity, ambient float64) {
	_, vh := c.transform.View()
	l := &pointLight{x: x, y: vh - y, radius: radius, intensity: intensity, ambient: ambient}
	c.light = l
	c.activeShader.SetLight(l.x, l.y, l.radius, l.intensity, l.ambient)
}

// ClearLight removes the light.
func (c *Canvas) ClearLight() {
	c.light = nil
	c.activeShader.SetLight(0, 0, 0, 0, 1)
}

// SetVertexTransform sets the destination rectangle of the next quad.
func (c *Canvas) SetVertexTransform(x, y, w, h float64) {
	c.activeShader.SetVertexTransform(x, y, w, h)
}

// SetFragmentTransform sets the normalized source rectangle of the next quad.
func (c *Canvas) SetFragmentTransform(x, y, w, h float64) {
	c.activeShader.SetFragTransform(x, y, w, h)
}

// ResetVertexAndFragmentTransforms resets both rectangles to the unit square.
func (c *Canvas) ResetVertexAndFragmentTransforms() {
	c.activeShader.SetVertexTransform(0, 0, 1, 1)
	c.activeShader.SetFragTransform(0, 0, 1, 1)
}

// FillRect draws the unit quad stretched over (x, y, w, h) with the active
// shader.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.activeShader.SetVertexTransform(x, y, w, h)
	c.BindMesh(c.rect)
	c.rect.Draw()
}

// Fill covers the whole virtual surface.
func (c *Canvas) Fill() {
	c.FillRect(0, 0, float64(c.virtualW), float64(c.virtualH))
}

// DrawBitmap draws the whole of bmp into (dx, dy, dw, dh). Negative sizes
// mirror the image.
func (c *Canvas) DrawBitmap(bmp *Bitmap, dx, dy, dw, dh float64) {
	c.DrawBitmapRegion(bmp, 0, 0, float64(bmp.w), float64(bmp.h), dx, dy, dw, dh)
}

// DrawBitmapRegion draws the source rectangle (sx, sy, sw, sh) of bmp, in
// pixels, into the destination rectangle (dx, dy, dw, dh).
func (c *Canvas) DrawBitmapRegion(bmp *Bitmap, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	w, h := float64(bmp.w), float64(bmp.h)
	c.activeShader.SetVertexTransform(dx, dy, dw, dh)
	c.activeShader.SetFragTransform(sx/w, sy/h, sw/w, sh/h)

	c.BindMesh(c.rect)
	c.BindTexture(bmp)
	c.rect.Draw()
}

// DrawMesh draws m with the active shader and transforms.
func (c *Canvas) DrawMesh(m *Mesh) {
	c.BindMesh(m)
	m.Draw()
}

// NewMesh creates a mesh on the canvas device. The caller owns it.
func (c *Canvas) NewMesh(vertices, uvs []float32, indices []uint16) (*Mesh, error) {
	return NewMesh(c.dev, vertices, uvs, indices)
}

// DestroyMesh disposes m and forgets it if it was the active mesh.
func (c *Canvas) DestroyMesh(m *Mesh) {
	if m.id == c.activeMesh {
		c.activeMesh = 0
	}
	m.Dispose()
}

// NewBitmap creates a bitmap from pixels with no framebuffer.
func (c *Canvas) NewBitmap(pix []byte, w, h int, filter FilterMode) (*Bitmap, error) {
	return NewBitmapFromPixels(c.dev, pix, w, h, filter, false)
}

// NewRenderBitmap creates a transparent bitmap that can be drawn into with
// DrawToBitmap.
func (c *Canvas) NewRenderBitmap(w, h int, filter FilterMode) (*Bitmap, error) {
	return NewBitmapFromPixels(c.dev, nil, w, h, filter, true)
}

// DestroyBitmap disposes bmp and forgets it if it was the active texture.
func (c *Canvas) DestroyBitmap(bmp *Bitmap) {
	if bmp.tex == c.activeTexture {
		c.activeTexture = 0
	}
	bmp.Dispose()
}

// DrawToBitmap redirects drawing into bmp for the duration of fn. The view
// is set to the bitmap size with an identity transform. Afterwards the
// previous render target, viewport, view and transform stack are restored,
// so calls may nest inside DrawToFramebuffer. Bitmaps without a framebuffer
// are ignored.
func (c *Canvas) DrawToBitmap(bmp *Bitmap, fn func(c *Canvas)) {
	if !bmp.HasFramebuffer() || bmp.Disposed() {
		return
	}
	prev := c.target
	saved := c.transform.save()
	defer func() {
		c.bindTarget(prev)
		c.transform.restore(saved)
		c.transform.Use()
	}()

	c.bindTarget(bmp)
	c.transform.LoadIdentity().SetView(float64(bmp.w), float64(bmp.h)).Use()
	fn(c)
}

// bindTarget binds the framebuffer of bmp, or the physical surface for nil,
// and sets the viewport to cover it.
func (c *Canvas) bindTarget(bmp *Bitmap) {
	c.target = bmp
	if bmp == nil {
		c.dev.BindFramebuffer(0)
		c.dev.Viewport(0, 0, c.screenW, c.screenH)
		return
	}
	c.dev.BindFramebuffer(bmp.fb)
	c.dev.Viewport(0, 0, bmp.w, bmp.h)
}

// DrawToFramebuffer runs fn with drawing redirected into the virtual
// framebuffer, in virtual coordinates.
func (c *Canvas) DrawToFramebuffer(fn func(c *Canvas)) {
	c.DrawToBitmap(c.framebuffer, fn)
}

// DrawFramebufferTexture presents the virtual framebuffer: it clears the
// physical surface to black and draws the framebuffer letterboxed into it,
// flipped vertically since framebuffer rows are stored bottom-up. The
// active shader is restored afterwards.
func (c *Canvas) DrawFramebufferTexture() {
	r := c.Letterbox()

	c.Clear(0, 0, 0)
	c.transform.SetView(float64(c.screenW), float64(c.screenH)).LoadIdentity().Use()
	c.SetColor(1, 1, 1, 1)

	old := c.activeShader
	if c.filter != nil {
		c.bindFilter(r)
	} else {
		c.ChangeShader(ShaderTextured)
	}

	c.DrawBitmap(c.framebuffer, r.X, r.Y+r.Height, r.Width, -r.Height)

	c.unbindTexture()
	if c.filter != nil {
		c.unbindFilter()
	}
	c.useShader(old)
}

// Letterbox returns the presentation rectangle of the framebuffer on the
// current physical surface.
func (c *Canvas) Letterbox() Rect {
	return Letterbox(float64(c.virtualW), float64(c.virtualH), float64(c.screenW), float64(c.screenH))
}

// Frame draws one complete frame: fn runs inside DrawToFramebuffer, the
// result is presented, and the transform stack is cleared.
func (c *Canvas) Frame(fn func(c *Canvas)) {
	depth := 1
	c.DrawToFramebuffer(func(c *Canvas) {
		fn(c)
		depth = c.transform.Depth()
	})
	c.DrawFramebufferTexture()
	c.transform.ClearStacks()
	c.endFrame(depth)
}
