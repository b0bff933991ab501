package easel

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black, used for letterbox bars and the loading screen.
var ColorBlack = Color{0, 0, 0, 1}

// toNRGBA converts c to an 8-bit straight-alpha color.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: unitToByte(c.R),
		G: unitToByte(c.G),
		B: unitToByte(c.B),
		A: unitToByte(c.A),
	}
}

// unitToByte maps [0, 1] to [0, 255] with rounding and clamping.
func unitToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// FilterMode selects how a texture is sampled.
type FilterMode uint8

const (
	FilterNearest FilterMode = iota // nearest texel
	FilterLinear                    // bilinear interpolation
)

// TextAlign controls horizontal alignment of DrawText output relative to
// the anchor position.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // draw from the anchor
	TextAlignCenter                  // center the text on the anchor
	TextAlignRight                   // end the text at the anchor
)

// Flip mirrors a sprite frame when drawn.
type Flip uint8

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1
	FlipVertical   Flip = 2
	FlipBoth       Flip = FlipHorizontal | FlipVertical
)

// Texture units bound by every shader's samplers.
const (
	TextureUnitColor  = 0 // primary color texture (texSampler)
	TextureUnitFilter = 1 // presentation filter texture (filterSampler)

	textureUnitCount = 2
)

// Default virtual resolution used when a CanvasConfig leaves it unset.
const (
	DefaultVirtualWidth  = 1024
	DefaultVirtualHeight = 768
)
