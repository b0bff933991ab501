package easel

import "golang.org/x/image/math/f64"

// Transforms is a stack of affine matrices plus a view projection. The top of
// the stack places drawn quads in virtual coordinates; the view maps virtual
// coordinates to normalized device coordinates. Use uploads view * top to the
// active shader.
//
// Methods return the receiver so calls can be chained:
//
//	c.Transform().Push().Translate(x, y).Rotate(a).Use()
type Transforms struct {
	stack []f64.Mat3
	view  f64.Mat3
	viewW float64
	viewH float64

	shader *ShaderProgram
}

func newTransforms() *Transforms {
	t := &Transforms{view: identityMatrix}
	t.LoadIdentity()
	return t
}

// LoadIdentity resets the stack to a single identity matrix.
func (t *Transforms) LoadIdentity() *Transforms {
	t.stack = append(t.stack[:0], identityMatrix)
	return t
}

// SetView sets the projection for a w x h virtual surface.
func (t *Transforms) SetView(w, h float64) *Transforms {
	t.view = viewMatrix(w, h)
	t.viewW, t.viewH = w, h
	return t
}

// View returns the size passed to the last SetView call.
func (t *Transforms) View() (w, h float64) {
	return t.viewW, t.viewH
}

// Push duplicates the top matrix.
func (t *Transforms) Push() *Transforms {
	t.stack = append(t.stack, t.stack[len(t.stack)-1])
	return t
}

// Pop removes the top matrix. Popping the last matrix is a usage error and
// panics.
func (t *Transforms) Pop() *Transforms {
	if len(t.stack) <= 1 {
		panic("easel: transform stack underflow (Pop without matching Push)")
	}
	t.stack = t.stack[:len(t.stack)-1]
	return t
}

// Translate right-multiplies the top matrix by a translation.
func (t *Transforms) Translate(x, y float64) *Transforms {
	return t.apply(translationMatrix(x, y))
}

// Rotate right-multiplies the top matrix by a rotation of angle radians.
func (t *Transforms) Rotate(angle float64) *Transforms {
	return t.apply(rotationMatrix(angle))
}

// Scale right-multiplies the top matrix by a scale.
func (t *Transforms) Scale(sx, sy float64) *Transforms {
	return t.apply(scaleMatrix(sx, sy))
}

func (t *Transforms) apply(m f64.Mat3) *Transforms {
	top := len(t.stack) - 1
	t.stack[top] = multiplyMatrix(t.stack[top], m)
	return t
}

// Top returns the current top matrix.
func (t *Transforms) Top() f64.Mat3 {
	return t.stack[len(t.stack)-1]
}

// Matrix returns view * top, the matrix Use uploads.
func (t *Transforms) Matrix() f64.Mat3 {
	return multiplyMatrix(t.view, t.Top())
}

// Depth returns the number of matrices on the stack (1 when balanced).
func (t *Transforms) Depth() int {
	return len(t.stack)
}

// Use uploads view * top to the shader the stack is attached to.
func (t *Transforms) Use() *Transforms {
	if t.shader != nil {
		t.shader.SetTransformMatrix(t.Matrix())
	}
	return t
}

// ClearStacks drops every nested scope, leaving one identity matrix.
func (t *Transforms) ClearStacks() *Transforms {
	return t.LoadIdentity()
}

// transformState is a saved copy of the stack and view.
type transformState struct {
	stack        []f64.Mat3
	view         f64.Mat3
	viewW, viewH float64
}

func (t *Transforms) save() transformState {
	return transformState{
		stack: append([]f64.Mat3(nil), t.stack...),
		view:  t.view,
		viewW: t.viewW,
		viewH: t.viewH,
	}
}

func (t *Transforms) restore(s transformState) {
	t.stack = append(t.stack[:0], s.stack...)
	t.view = s.view
	t.viewW, t.viewH = s.viewW, s.viewH
}

func (t *Transforms) setShader(s *ShaderProgram) {
	t.shader = s
}
