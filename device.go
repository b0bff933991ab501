package easel

import "golang.org/x/image/math/f64"

// Device is the immediate-mode GPU API the rendering core drives. It is a
// state machine in the manner of GL: one program, one mesh, one framebuffer
// and one texture per unit are bound at a time, uniforms apply to the bound
// program, and DrawElements draws the bound mesh with the bound program into
// the bound framebuffer.
//
// Resource handles are opaque non-zero ids; 0 means "none" (for
// BindFramebuffer, the default framebuffer). Ids are never reused within a
// device, so they are safe to use as cache keys.
//
// Window coordinates used by Viewport and ReadPixels have their origin at the
// bottom-left. Framebuffer textures store rows bottom-up as a consequence.
type Device interface {
	// CreateProgram compiles the fragment stage of src for this backend and
	// links it with the shared vertex stage.
	CreateProgram(src ShaderSource) (uint32, error)
	UseProgram(program uint32)
	// UniformLocation returns the location of a named uniform of program,
	// or -1 if the program has no such uniform. Setting location -1 is a no-op.
	UniformLocation(program uint32, name string) int32
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform3f(loc int32, x, y, z float32)
	Uniform4f(loc int32, x, y, z, w float32)
	UniformMatrix3(loc int32, m f64.Mat3)

	// CreateTexture uploads a w x h texture. pix holds straight-alpha RGBA
	// rows, first row first; nil allocates a transparent texture.
	CreateTexture(w, h int, pix []byte, filter FilterMode) uint32
	ActiveTexture(unit int)
	// BindTexture binds tex to the active texture unit. 0 unbinds.
	BindTexture(tex uint32)
	DeleteTexture(tex uint32)

	// CreateFramebuffer creates a framebuffer with tex as color target.
	CreateFramebuffer(tex uint32) uint32
	BindFramebuffer(fb uint32)
	DeleteFramebuffer(fb uint32)

	// CreateMesh uploads 2D vertex positions, texture coordinates and a
	// triangle-list index buffer.
	CreateMesh(vertices, uvs []float32, indices []uint16) uint32
	BindMesh(mesh uint32)
	DeleteMesh(mesh uint32)
	// DrawElements draws the first count indices of the bound mesh.
	DrawElements(count int)

	Viewport(x, y, w, h int)
	ClearColor(r, g, b, a float32)
	// Clear fills the whole bound framebuffer with the clear color.
	Clear()

	// ResizeSurface resizes the default framebuffer (the window surface).
	ResizeSurface(w, h int)
	// FramebufferSize returns the size of the bound framebuffer.
	FramebufferSize() (w, h int)
	// ReadPixels copies the bound framebuffer into dst as straight-alpha
	// RGBA rows, bottom row first. dst must hold 4*w*h bytes.
	ReadPixels(dst []byte)
}

// viewport is a rectangle in window coordinates (origin bottom-left).
type viewport struct {
	x, y, w, h int
}
