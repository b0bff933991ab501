package easel

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrices are 3x3 row-major affine transforms:
//
//	| m[0] m[1] m[2] |   | a  c  tx |
//	| m[3] m[4] m[5] | = | b  d  ty |
//	| m[6] m[7] m[8] |   | 0  0   1 |

// identityMatrix is the identity affine matrix.
var identityMatrix = f64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// multiplyMatrix returns p * c. Applied to a point, c acts first.
func multiplyMatrix(p, c f64.Mat3) f64.Mat3 {
	return f64.Mat3{
		p[0]*c[0] + p[1]*c[3] + p[2]*c[6],
		p[0]*c[1] + p[1]*c[4] + p[2]*c[7],
		p[0]*c[2] + p[1]*c[5] + p[2]*c[8],
		p[3]*c[0] + p[4]*c[3] + p[5]*c[6],
		p[3]*c[1] + p[4]*c[4] + p[5]*c[7],
		p[3]*c[2] + p[4]*c[5] + p[5]*c[8],
		p[6]*c[0] + p[7]*c[3] + p[8]*c[6],
		p[6]*c[1] + p[7]*c[4] + p[8]*c[7],
		p[6]*c[2] + p[7]*c[5] + p[8]*c[8],
	}
}

func translationMatrix(x, y float64) f64.Mat3 {
	return f64.Mat3{1, 0, x, 0, 1, y, 0, 0, 1}
}

func scaleMatrix(sx, sy float64) f64.Mat3 {
	return f64.Mat3{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// rotationMatrix rotates by angle radians. With Y pointing down on screen,
// positive angles turn clockwise.
func rotationMatrix(angle float64) f64.Mat3 {
	sin, cos := math.Sincos(angle)
	return f64.Mat3{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
}

// viewMatrix maps virtual pixel coordinates to normalized device coordinates:
// (0, 0) goes to (-1, 1) and (w, h) to (1, -1).
func viewMatrix(w, h float64) f64.Mat3 {
	if w == 0 || h == 0 {
		return identityMatrix
	}
	return f64.Mat3{2 / w, 0, -1, 0, -2 / h, 1, 0, 0, 1}
}

// transformPoint applies m to the point (x, y).
func transformPoint(m f64.Mat3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}
