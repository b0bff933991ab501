package easel

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"
)

// EbitenDevice implements Device on Ebitengine. Programs are Kage shaders,
// textures and framebuffers are *ebiten.Image, and the default framebuffer
// is the screen image passed to SetScreen at the start of each Draw.
//
// Offscreen images store window row y at image row y, so framebuffer
// textures are bottom-up like on a GL device; only the screen is flipped.
// Shader draws have no sampler state, so filtering and clamp-to-edge happen
// in the Kage sources.
type EbitenDevice struct {
	nextID uint32

	programs     map[uint32]*ebitenProgram
	textures     map[uint32]*ebitenTexture
	framebuffers map[uint32]uint32
	meshes       map[uint32]*meshData

	screen           *ebiten.Image
	screenW, screenH int

	program uint32
	mesh    uint32
	fb      uint32
	unit    int
	units   [textureUnitCount]uint32
	vp      viewport
	clear   [4]float32

	verts    []windowVertex
	ebVerts  []ebiten.Vertex
	uniforms map[string]any
	scratch  *ebiten.Image
}

type ebitenProgram struct {
	shader   *ebiten.Shader
	declared []string
	uniforms UniformState
}

type ebitenTexture struct {
	img    *ebiten.Image
	w, h   int
	filter FilterMode
}

// NewEbitenDevice creates a device. Call SetScreen before drawing each frame.
func NewEbitenDevice() *EbitenDevice {
	return &EbitenDevice{
		programs:     make(map[uint32]*ebitenProgram),
		textures:     make(map[uint32]*ebitenTexture),
		framebuffers: make(map[uint32]uint32),
		meshes:       make(map[uint32]*meshData),
		uniforms:     make(map[string]any, 16),
	}
}

// SetScreen sets the image used as the default framebuffer.
func (d *EbitenDevice) SetScreen(screen *ebiten.Image) {
	d.screen = screen
	if screen != nil {
		b := screen.Bounds()
		d.screenW, d.screenH = b.Dx(), b.Dy()
	}
}

func (d *EbitenDevice) newID() uint32 {
	d.nextID++
	return d.nextID
}

func (d *EbitenDevice) CreateProgram(src ShaderSource) (uint32, error) {
	if len(src.Kage) == 0 {
		return 0, fmt.Errorf("program %q has no Kage source", src.Name)
	}
	shader, err := ebiten.NewShader(src.Kage)
	if err != nil {
		return 0, err
	}
	id := d.newID()
	d.programs[id] = &ebitenProgram{shader: shader, declared: src.Uniforms}
	return id, nil
}

func (d *EbitenDevice) UseProgram(program uint32) { d.program = program }

func (d *EbitenDevice) UniformLocation(program uint32, name string) int32 {
	p := d.programs[program]
	if p == nil {
		return -1
	}
	return uniformLocation(p.declared, name)
}

func (d *EbitenDevice) current(loc int32) *UniformState {
	if loc < 0 {
		return nil
	}
	if p := d.programs[d.program]; p != nil {
		return &p.uniforms
	}
	return nil
}

func (d *EbitenDevice) Uniform1i(loc int32, v int32) {
	if u := d.current(loc); u != nil {
		u.set1i(loc, v)
	}
}

func (d *EbitenDevice) Uniform1f(loc int32, v float32) {
	if u := d.current(loc); u != nil {
		u.set1f(loc, v)
	}
}

func (d *EbitenDevice) Uniform2f(loc int32, x, y float32) {
	if u := d.current(loc); u != nil {
		u.set2f(loc, x, y)
	}
}

func (d *EbitenDevice) Uniform3f(loc int32, x, y, z float32) {
	if u := d.current(loc); u != nil {
		u.set3f(loc, x, y, z)
	}
}

func (d *EbitenDevice) Uniform4f(loc int32, x, y, z, w float32) {
	if u := d.current(loc); u != nil {
		u.set4f(loc, x, y, z, w)
	}
}

func (d *EbitenDevice) UniformMatrix3(loc int32, m f64.Mat3) {
	if u := d.current(loc); u != nil {
		u.setMatrix3(loc, m)
	}
}

func (d *EbitenDevice) CreateTexture(w, h int, pix []byte, filter FilterMode) uint32 {
	img := ebiten.NewImage(w, h)
	if pix != nil {
		img.WritePixels(premultiply(pix))
	}
	id := d.newID()
	d.textures[id] = &ebitenTexture{img: img, w: w, h: h, filter: filter}
	return id
}

func (d *EbitenDevice) ActiveTexture(unit int) {
	if unit >= 0 && unit < textureUnitCount {
		d.unit = unit
	}
}

func (d *EbitenDevice) BindTexture(tex uint32) { d.units[d.unit] = tex }

func (d *EbitenDevice) DeleteTexture(tex uint32) {
	if t, ok := d.textures[tex]; ok {
		t.img.Deallocate()
		delete(d.textures, tex)
	}
	for i, t := range d.units {
		if t == tex {
			d.units[i] = 0
		}
	}
}

func (d *EbitenDevice) CreateFramebuffer(tex uint32) uint32 {
	id := d.newID()
	d.framebuffers[id] = tex
	return id
}

func (d *EbitenDevice) BindFramebuffer(fb uint32) { d.fb = fb }

func (d *EbitenDevice) DeleteFramebuffer(fb uint32) {
	delete(d.framebuffers, fb)
	if d.fb == fb {
		d.fb = 0
	}
}

func (d *EbitenDevice) CreateMesh(vertices, uvs []float32, indices []uint16) uint32 {
	id := d.newID()
	d.meshes[id] = &meshData{
		vertices: append([]float32(nil), vertices...),
		uvs:      append([]float32(nil), uvs...),
		indices:  append([]uint16(nil), indices...),
	}
	return id
}

func (d *EbitenDevice) BindMesh(mesh uint32) { d.mesh = mesh }

func (d *EbitenDevice) DeleteMesh(mesh uint32) {
	delete(d.meshes, mesh)
	if d.mesh == mesh {
		d.mesh = 0
	}
}

func (d *EbitenDevice) Viewport(x, y, w, h int) { d.vp = viewport{x, y, w, h} }

func (d *EbitenDevice) ClearColor(r, g, b, a float32) { d.clear = [4]float32{r, g, b, a} }

func (d *EbitenDevice) Clear() {
	img, _ := d.target()
	if img == nil {
		return
	}
	c := Color{float64(d.clear[0]), float64(d.clear[1]), float64(d.clear[2]), float64(d.clear[3])}
	img.Fill(c.toNRGBA())
}

// ResizeSurface records the window size. Ebitengine owns the screen image;
// SetScreen picks up its actual size each frame.
func (d *EbitenDevice) ResizeSurface(w, h int) {
	d.screenW, d.screenH = w, h
}

func (d *EbitenDevice) FramebufferSize() (int, int) {
	if d.fb == 0 {
		return d.screenW, d.screenH
	}
	_, t := d.target()
	if t == nil {
		return 0, 0
	}
	return t.w, t.h
}

// ReadPixels implements Device. Reading the screen is only possible while
// Ebitengine is drawing.
func (d *EbitenDevice) ReadPixels(dst []byte) {
	img, _ := d.target()
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := make([]byte, 4*w*h)
	img.ReadPixels(buf)
	if d.fb == 0 {
		stride := 4 * w
		for y := 0; y < h; y++ {
			copy(dst[y*stride:(y+1)*stride], buf[(h-1-y)*stride:(h-y)*stride])
		}
	} else {
		copy(dst, buf)
	}
	unpremultiply(dst[:min(len(dst), len(buf))])
}

// target returns the bound color target. The texture is nil for the screen.
func (d *EbitenDevice) target() (*ebiten.Image, *ebitenTexture) {
	if d.fb == 0 {
		return d.screen, nil
	}
	t := d.textures[d.framebuffers[d.fb]]
	if t == nil {
		return nil, nil
	}
	return t.img, t
}

func (d *EbitenDevice) DrawElements(count int) {
	p := d.programs[d.program]
	m := d.meshes[d.mesh]
	dst, _ := d.target()
	if p == nil || m == nil || dst == nil {
		return
	}
	count = min(count, len(m.indices))
	u := &p.uniforms

	d.verts = runVertexStage(u, m.vertices, m.uvs, d.vp, d.verts[:0])

	var op ebiten.DrawTrianglesShaderOptions
	tex0 := d.unitTexture(u.TexSampler)
	var sw, sh float64
	if tex0 != nil {
		op.Images[0] = tex0.img
		sw, sh = float64(tex0.w), float64(tex0.h)
	}
	if tex1 := d.unitTexture(u.FilterSampler); tex1 != nil && tex0 != nil && hasUniform(p.declared, "frameSize") {
		op.Images[1] = d.resample(tex1, tex0.w, tex0.h)
	}

	th := float64(dst.Bounds().Dy())
	flip := d.fb == 0

	d.ebVerts = d.ebVerts[:0]
	for _, v := range d.verts {
		y := v.Y
		if flip {
			y = th - y
		}
		d.ebVerts = append(d.ebVerts, ebiten.Vertex{
			DstX:   float32(v.X),
			DstY:   float32(y),
			SrcX:   float32(v.U * sw),
			SrcY:   float32(v.V * sh),
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}

	d.fillUniforms(u, tex0, th, flip)
	op.Uniforms = d.uniforms

	clip := image.Rect(d.vp.x, d.vp.y, d.vp.x+d.vp.w, d.vp.y+d.vp.h)
	if flip {
		clip = image.Rect(d.vp.x, int(th)-(d.vp.y+d.vp.h), d.vp.x+d.vp.w, int(th)-d.vp.y)
	}
	sub, ok := dst.SubImage(clip).(*ebiten.Image)
	if !ok || sub.Bounds().Empty() {
		return
	}
	sub.DrawTrianglesShader(d.ebVerts, m.indices[:count], p.shader, &op)
}

func (d *EbitenDevice) unitTexture(unit int32) *ebitenTexture {
	if unit < 0 || int(unit) >= textureUnitCount {
		return nil
	}
	return d.textures[d.units[unit]]
}

// resample stretches t into a w x h scratch image, since every image of a
// shader draw must have the same size.
func (d *EbitenDevice) resample(t *ebitenTexture, w, h int) *ebiten.Image {
	if d.scratch == nil || d.scratch.Bounds().Dx() != w || d.scratch.Bounds().Dy() != h {
		if d.scratch != nil {
			d.scratch.Deallocate()
		}
		d.scratch = ebiten.NewImage(w, h)
	}
	d.scratch.Clear()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(w)/float64(t.w), float64(h)/float64(t.h))
	if t.filter == FilterLinear {
		op.Filter = ebiten.FilterLinear
	}
	op.Blend = ebiten.BlendCopy
	d.scratch.DrawImage(t.img, &op)
	return d.scratch
}

func (d *EbitenDevice) fillUniforms(u *UniformState, tex0 *ebitenTexture, targetH float64, flip bool) {
	m := d.uniforms
	m["Color"] = u.Color[:]
	m["Contrast"] = u.Contrast
	m["FramePos"] = u.FramePos[:]
	m["FrameSize"] = u.FrameSize[:]
	m["LightPos"] = u.LightPos[:]
	m["LightParams"] = u.LightParams[:]

	var linear0, linear1 float32
	if tex0 != nil && tex0.filter == FilterLinear {
		linear0 = 1
	}
	if t := d.unitTexture(u.FilterSampler); t != nil && t.filter == FilterLinear {
		linear1 = 1
	}
	m["Linear0"] = linear0
	m["Linear1"] = linear1
	m["TargetHeight"] = float32(targetH)
	var flipTarget float32
	if flip {
		flipTarget = 1
	}
	m["FlipTarget"] = flipTarget
}

func hasUniform(declared []string, name string) bool {
	for _, n := range declared {
		if n == name {
			return true
		}
	}
	return false
}

// premultiply converts straight-alpha RGBA to premultiplied RGBA.
func premultiply(pix []byte) []byte {
	out := make([]byte, len(pix))
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint32(pix[i+3])
		out[i] = uint8((uint32(pix[i])*a + 127) / 255)
		out[i+1] = uint8((uint32(pix[i+1])*a + 127) / 255)
		out[i+2] = uint8((uint32(pix[i+2])*a + 127) / 255)
		out[i+3] = pix[i+3]
	}
	return out
}

// unpremultiply converts premultiplied RGBA to straight alpha in place.
func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a > 0 && a < 255 {
			pix[i] = uint8(min(int(pix[i])*255/a, 255))
			pix[i+1] = uint8(min(int(pix[i+1])*255/a, 255))
			pix[i+2] = uint8(min(int(pix[i+2])*255/a, 255))
		}
	}
}
