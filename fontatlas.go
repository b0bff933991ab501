package easel

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// NewFontAtlas rasterizes the printable ASCII glyphs of face into the
// 16x16-cell layout DrawText expects: white glyphs on transparent cells of
// cell x cell pixels. Each glyph is centred horizontally in its cell; the
// baseline is placed so the face's ascent and descent are centred vertically.
func NewFontAtlas(face font.Face, cell int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fontColumns*cell, fontColumns*cell))

	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	baseline := (cell-(ascent+descent))/2 + ascent

	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for c := ' '; c <= '~'; c++ {
		adv, ok := face.GlyphAdvance(c)
		if !ok {
			continue
		}
		x := int(c%fontColumns)*cell + (cell-adv.Round())/2
		y := int(c/fontColumns)*cell + baseline
		d.Dot = fixed.P(x, y)
		d.DrawString(string(c))
	}
	return img
}

// LoadFontAtlas parses a TrueType or OpenType font and rasterizes it with
// NewFontAtlas. The glyph size is chosen so that a line fits in one cell.
func LoadFontAtlas(data []byte, cell int) (*image.NRGBA, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("font atlas: cell size %d must be positive", cell)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font atlas: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(cell) * 0.75,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font atlas: new face: %w", err)
	}
	defer face.Close()
	return NewFontAtlas(face, cell), nil
}
