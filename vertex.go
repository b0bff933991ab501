package easel

// windowVertex is a vertex after the vertex stage and viewport mapping:
// window position (origin bottom-left) and texture coordinates.
type windowVertex struct {
	X, Y float64
	U, V float64
}

// runVertexStage applies the fixed vertex stage shared by every program:
//
//	position = transform * vec3(vertex*size + pos, 1)
//	uv'      = uv*texSize + texPos
//
// and maps the resulting normalized device coordinates into vp. Results are
// appended to out.
func runVertexStage(u *UniformState, vertices, uvs []float32, vp viewport, out []windowVertex) []windowVertex {
	n := len(vertices) / 2
	for i := 0; i < n; i++ {
		px := float64(vertices[2*i])*float64(u.Size[0]) + float64(u.Pos[0])
		py := float64(vertices[2*i+1])*float64(u.Size[1]) + float64(u.Pos[1])
		nx, ny := transformPoint(u.Transform, px, py)

		var tu, tv float64
		if 2*i+1 < len(uvs) {
			tu = float64(uvs[2*i])*float64(u.TexSize[0]) + float64(u.TexPos[0])
			tv = float64(uvs[2*i+1])*float64(u.TexSize[1]) + float64(u.TexPos[1])
		}

		out = append(out, windowVertex{
			X: float64(vp.x) + (nx+1)/2*float64(vp.w),
			Y: float64(vp.y) + (ny+1)/2*float64(vp.h),
			U: tu,
			V: tv,
		})
	}
	return out
}
