package easel

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// SoftwareDevice is a CPU implementation of Device. It rasterizes into
// straight-alpha RGBA pixel slices with the same conventions as a GL device:
// window origin at the bottom-left, framebuffer rows stored bottom-up,
// pixel-centre sampling, a top-left fill rule and
// SRC_ALPHA/ONE_MINUS_SRC_ALPHA blending (ONE/ONE_MINUS_SRC_ALPHA for alpha).
//
// It backs headless rendering and makes pixel output testable without a GPU.
type SoftwareDevice struct {
	nextID uint32

	programs     map[uint32]*softProgram
	textures     map[uint32]*softTexture
	framebuffers map[uint32]uint32
	meshes       map[uint32]*meshData

	screen *softTexture

	program uint32
	mesh    uint32
	fb      uint32
	unit    int
	units   [textureUnitCount]uint32
	vp      viewport
	clear   [4]float32

	verts []windowVertex
	in    FragmentInput
}

type softProgram struct {
	src      ShaderSource
	uniforms UniformState
}

type softTexture struct {
	w, h   int
	pix    []byte
	filter FilterMode
}

type meshData struct {
	vertices []float32
	uvs      []float32
	indices  []uint16
}

// NewSoftwareDevice creates a device whose default framebuffer is w x h.
func NewSoftwareDevice(w, h int) *SoftwareDevice {
	d := &SoftwareDevice{
		programs:     make(map[uint32]*softProgram),
		textures:     make(map[uint32]*softTexture),
		framebuffers: make(map[uint32]uint32),
		meshes:       make(map[uint32]*meshData),
		screen:       newSoftTexture(w, h, nil, FilterNearest),
		vp:           viewport{0, 0, w, h},
	}
	d.in.Sample = d.sample
	return d
}

func newSoftTexture(w, h int, pix []byte, filter FilterMode) *softTexture {
	t := &softTexture{w: w, h: h, pix: make([]byte, 4*w*h), filter: filter}
	copy(t.pix, pix)
	return t
}

func (d *SoftwareDevice) newID() uint32 {
	d.nextID++
	return d.nextID
}

// CreateProgram implements Device. Only the Software stage is used.
func (d *SoftwareDevice) CreateProgram(src ShaderSource) (uint32, error) {
	if src.Software == nil {
		return 0, fmt.Errorf("program %q has no software fragment stage", src.Name)
	}
	id := d.newID()
	d.programs[id] = &softProgram{src: src}
	return id, nil
}

func (d *SoftwareDevice) UseProgram(program uint32) { d.program = program }

func (d *SoftwareDevice) UniformLocation(program uint32, name string) int32 {
	p := d.programs[program]
	if p == nil {
		return -1
	}
	return uniformLocation(p.src.Uniforms, name)
}

func (d *SoftwareDevice) uniforms(loc int32) *UniformState {
	if loc < 0 {
		return nil
	}
	p := d.programs[d.program]
	if p == nil {
		return nil
	}
	return &p.uniforms
}

func (d *SoftwareDevice) Uniform1i(loc int32, v int32) {
	if u := d.uniforms(loc); u != nil {
		u.set1i(loc, v)
	}
}

func (d *SoftwareDevice) Uniform1f(loc int32, v float32) {
	if u := d.uniforms(loc); u != nil {
		u.set1f(loc, v)
	}
}

func (d *SoftwareDevice) Uniform2f(loc int32, x, y float32) {
	if u := d.uniforms(loc); u != nil {
		u.set2f(loc, x, y)
	}
}

func (d *SoftwareDevice) Uniform3f(loc int32, x, y, z float32) {
	if u := d.uniforms(loc); u != nil {
		u.set3f(loc, x, y, z)
	}
}

func (d *SoftwareDevice) Uniform4f(loc int32, x, y, z, w float32) {
	if u := d.uniforms(loc); u != nil {
		u.set4f(loc, x, y, z, w)
	}
}

func (d *SoftwareDevice) UniformMatrix3(loc int32, m f64.Mat3) {
	if u := d.uniforms(loc); u != nil {
		u.setMatrix3(loc, m)
	}
}

func (d *SoftwareDevice) CreateTexture(w, h int, pix []byte, filter FilterMode) uint32 {
	id := d.newID()
	d.textures[id] = newSoftTexture(w, h, pix, filter)
	return id
}

func (d *SoftwareDevice) ActiveTexture(unit int) {
	if unit >= 0 && unit < textureUnitCount {
		d.unit = unit
	}
}

func (d *SoftwareDevice) BindTexture(tex uint32) { d.units[d.unit] = tex }

func (d *SoftwareDevice) DeleteTexture(tex uint32) {
	delete(d.textures, tex)
	for i, t := range d.units {
		if t == tex {
			d.units[i] = 0
		}
	}
}

func (d *SoftwareDevice) CreateFramebuffer(tex uint32) uint32 {
	id := d.newID()
	d.framebuffers[id] = tex
	return id
}

func (d *SoftwareDevice) BindFramebuffer(fb uint32) { d.fb = fb }

func (d *SoftwareDevice) DeleteFramebuffer(fb uint32) {
	delete(d.framebuffers, fb)
	if d.fb == fb {
		d.fb = 0
	}
}

func (d *SoftwareDevice) CreateMesh(vertices, uvs []float32, indices []uint16) uint32 {
	id := d.newID()
	d.meshes[id] = &meshData{
		vertices: append([]float32(nil), vertices...),
		uvs:      append([]float32(nil), uvs...),
		indices:  append([]uint16(nil), indices...),
	}
	return id
}

func (d *SoftwareDevice) BindMesh(mesh uint32) { d.mesh = mesh }

func (d *SoftwareDevice) DeleteMesh(mesh uint32) {
	delete(d.meshes, mesh)
	if d.mesh == mesh {
		d.mesh = 0
	}
}

func (d *SoftwareDevice) Viewport(x, y, w, h int) { d.vp = viewport{x, y, w, h} }

func (d *SoftwareDevice) ClearColor(r, g, b, a float32) { d.clear = [4]float32{r, g, b, a} }

func (d *SoftwareDevice) Clear() {
	t := d.target()
	if t == nil {
		return
	}
	c := [4]byte{
		unitToByte(float64(d.clear[0])),
		unitToByte(float64(d.clear[1])),
		unitToByte(float64(d.clear[2])),
		unitToByte(float64(d.clear[3])),
	}
	for i := 0; i < len(t.pix); i += 4 {
		copy(t.pix[i:i+4], c[:])
	}
}

func (d *SoftwareDevice) ResizeSurface(w, h int) {
	if w == d.screen.w && h == d.screen.h {
		return
	}
	d.screen = newSoftTexture(w, h, nil, FilterNearest)
}

func (d *SoftwareDevice) FramebufferSize() (int, int) {
	t := d.target()
	if t == nil {
		return 0, 0
	}
	return t.w, t.h
}

func (d *SoftwareDevice) ReadPixels(dst []byte) {
	if t := d.target(); t != nil {
		copy(dst, t.pix)
	}
}

// Screen returns a copy of the default framebuffer as a top-down image.
func (d *SoftwareDevice) Screen() *image.NRGBA {
	return flipRows(d.screen.w, d.screen.h, d.screen.pix)
}

// flipRows converts bottom-up RGBA rows into a top-down image.
func flipRows(w, h int, pix []byte) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	stride := 4 * w
	for y := 0; y < h; y++ {
		src := pix[(h-1-y)*stride : (h-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img
}

// target returns the color target of the bound framebuffer.
func (d *SoftwareDevice) target() *softTexture {
	if d.fb == 0 {
		return d.screen
	}
	tex, ok := d.framebuffers[d.fb]
	if !ok {
		return nil
	}
	return d.textures[tex]
}

func (d *SoftwareDevice) DrawElements(count int) {
	p := d.programs[d.program]
	m := d.meshes[d.mesh]
	t := d.target()
	if p == nil || m == nil || t == nil {
		return
	}
	if count > len(m.indices) {
		count = len(m.indices)
	}

	d.verts = runVertexStage(&p.uniforms, m.vertices, m.uvs, d.vp, d.verts[:0])

	clip := image.Rect(d.vp.x, d.vp.y, d.vp.x+d.vp.w, d.vp.y+d.vp.h).
		Intersect(image.Rect(0, 0, t.w, t.h))
	if clip.Empty() {
		return
	}

	d.in.Uniforms = &p.uniforms
	for i := 0; i+2 < count; i += 3 {
		a, b, c := int(m.indices[i]), int(m.indices[i+1]), int(m.indices[i+2])
		if a >= len(d.verts) || b >= len(d.verts) || c >= len(d.verts) {
			continue
		}
		d.rasterize(t, clip, p.src.Software, d.verts[a], d.verts[b], d.verts[c])
	}
}

// edge is positive when p lies to the left of the directed edge a->b.
func edge(a, b windowVertex, px, py float64) float64 {
	return (b.X-a.X)*(py-a.Y) - (b.Y-a.Y)*(px-a.X)
}

// ownsEdge implements the fill rule for pixels exactly on an edge of a
// counter-clockwise triangle: left edges (pointing down) and top edges
// (horizontal, pointing left) own their pixels.
func ownsEdge(a, b windowVertex) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dy < 0 || (dy == 0 && dx < 0)
}

func (d *SoftwareDevice) rasterize(t *softTexture, clip image.Rectangle, frag FragmentFunc, v0, v1, v2 windowVertex) {
	area := edge(v0, v1, v2.X, v2.Y)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	minX := int(math.Floor(math.Min(v0.X, math.Min(v1.X, v2.X))))
	maxX := int(math.Ceil(math.Max(v0.X, math.Max(v1.X, v2.X))))
	minY := int(math.Floor(math.Min(v0.Y, math.Min(v1.Y, v2.Y))))
	maxY := int(math.Ceil(math.Max(v0.Y, math.Max(v1.Y, v2.Y))))
	bounds := image.Rect(minX, minY, maxX, maxY).Intersect(clip)

	own0, own1, own2 := ownsEdge(v1, v2), ownsEdge(v2, v0), ownsEdge(v0, v1)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		py := float64(y) + 0.5
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := float64(x) + 0.5
			w0 := edge(v1, v2, px, py)
			w1 := edge(v2, v0, px, py)
			w2 := edge(v0, v1, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			if (w0 == 0 && !own0) || (w1 == 0 && !own1) || (w2 == 0 && !own2) {
				continue
			}
			w0, w1, w2 = w0/area, w1/area, w2/area

			d.in.U = w0*v0.U + w1*v1.U + w2*v2.U
			d.in.V = w0*v0.V + w1*v1.V + w2*v2.V
			d.in.X, d.in.Y = px, py
			c, ok := frag(&d.in)
			if !ok {
				continue
			}
			blendPixel(t.pix[4*(y*t.w+x):], c)
		}
	}
}

// blendPixel blends straight-alpha src over the straight-alpha pixel dst.
func blendPixel(dst []byte, src [4]float64) {
	a := clampUnit(src[3])
	for i := 0; i < 3; i++ {
		dc := float64(dst[i]) / 255
		dst[i] = unitToByte(clampUnit(src[i])*a + dc*(1-a))
	}
	da := float64(dst[3]) / 255
	dst[3] = unitToByte(a + da*(1-a))
}

// sample reads the texture on unit with clamp-to-edge wrapping. An empty
// unit samples opaque black.
func (d *SoftwareDevice) sample(unit int32, u, v float64) [4]float64 {
	if unit < 0 || int(unit) >= textureUnitCount {
		return [4]float64{0, 0, 0, 1}
	}
	t := d.textures[d.units[unit]]
	if t == nil || t.w == 0 || t.h == 0 {
		return [4]float64{0, 0, 0, 1}
	}
	tx, ty := u*float64(t.w), v*float64(t.h)
	if t.filter == FilterNearest {
		return t.texel(int(math.Floor(tx)), int(math.Floor(ty)))
	}

	qx, qy := tx-0.5, ty-0.5
	x0, y0 := math.Floor(qx), math.Floor(qy)
	fx, fy := qx-x0, qy-y0
	ix, iy := int(x0), int(y0)
	c00 := t.texel(ix, iy)
	c10 := t.texel(ix+1, iy)
	c01 := t.texel(ix, iy+1)
	c11 := t.texel(ix+1, iy+1)

	var out [4]float64
	for i := range out {
		top := c00[i]*(1-fx) + c10[i]*fx
		bottom := c01[i]*(1-fx) + c11[i]*fx
		out[i] = top*(1-fy) + bottom*fy
	}
	return out
}

func (t *softTexture) texel(x, y int) [4]float64 {
	x = max(0, min(x, t.w-1))
	y = max(0, min(y, t.h-1))
	p := t.pix[4*(y*t.w+x):]
	return [4]float64{
		float64(p[0]) / 255,
		float64(p[1]) / 255,
		float64(p[2]) / 255,
		float64(p[3]) / 255,
	}
}
