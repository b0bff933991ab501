package easel

import "fmt"

// Mesh is an indexed triangle list uploaded to a Device: 2D vertex positions,
// texture coordinates and indices. The Canvas owns a unit quad; any other
// mesh is owned by its creator, who must Dispose it.
type Mesh struct {
	dev        Device
	id         uint32
	indexCount int
	disposed   bool
}

// unitQuadVertices span (0,0)-(1,1) with UVs equal to positions, so vertex
// and fragment transforms map the quad to a destination and source rect.
var (
	unitQuadVertices = []float32{0, 0, 1, 0, 1, 1, 0, 1}
	unitQuadUVs      = []float32{0, 0, 1, 0, 1, 1, 0, 1}
	unitQuadIndices  = []uint16{0, 1, 2, 2, 3, 0}
)

// NewMesh validates and uploads a triangle list. vertices and uvs hold x,y
// pairs and must have the same length; every index must reference a vertex
// and the index count must be a multiple of 3.
func NewMesh(dev Device, vertices, uvs []float32, indices []uint16) (*Mesh, error) {
	if len(vertices)%2 != 0 {
		return nil, fmt.Errorf("mesh vertices: odd component count %d", len(vertices))
	}
	if len(uvs) != len(vertices) {
		return nil, fmt.Errorf("mesh uvs: got %d components, want %d", len(uvs), len(vertices))
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh indices: count %d is not a multiple of 3", len(indices))
	}
	n := len(vertices) / 2
	for i, idx := range indices {
		if int(idx) >= n {
			return nil, fmt.Errorf("mesh indices: index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return &Mesh{
		dev:        dev,
		id:         dev.CreateMesh(vertices, uvs, indices),
		indexCount: len(indices),
	}, nil
}

func newUnitQuad(dev Device) *Mesh {
	m, err := NewMesh(dev, unitQuadVertices, unitQuadUVs, unitQuadIndices)
	if err != nil {
		panic("easel: unit quad: " + err.Error())
	}
	return m
}

// ID returns the device handle of the mesh. Handles are never reused.
func (m *Mesh) ID() uint32 { return m.id }

// IndexCount returns the number of indices drawn by Draw.
func (m *Mesh) IndexCount() int { return m.indexCount }

// Disposed reports whether Dispose has been called.
func (m *Mesh) Disposed() bool { return m.disposed }

// Bind makes the mesh the device's vertex source. Binding a disposed mesh
// panics.
func (m *Mesh) Bind() {
	m.checkDisposed("Bind")
	m.dev.BindMesh(m.id)
}

// Draw issues an indexed draw of the whole mesh. The mesh must be bound.
func (m *Mesh) Draw() {
	m.checkDisposed("Draw")
	m.dev.DrawElements(m.indexCount)
}

// Dispose releases the device buffers. Calling it twice is a no-op.
func (m *Mesh) Dispose() {
	if m.disposed {
		return
	}
	m.dev.DeleteMesh(m.id)
	m.disposed = true
}

func (m *Mesh) checkDisposed(op string) {
	if m.disposed {
		panic(fmt.Sprintf("easel: Mesh.%s on disposed mesh %d", op, m.id))
	}
}
