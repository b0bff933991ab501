package easel

import "math"

// Fonts are bitmaps laid out as 16 columns of square glyph cells. The glyph
// for byte c sits in cell (c mod 16, c / 16) and the cell size is the font
// width divided by 16.
const fontColumns = 16

// TextOptions controls DrawText layout.
type TextOptions struct {
	// XOff and YOff are extra spacing added to the cell width between glyphs
	// and to the cell height between lines.
	XOff, YOff float64
	// Align positions the text relative to the anchor. The zero value is
	// TextAlignLeft; pass TextAlignCenter explicitly for centered text.
	Align TextAlign
	// ScaleX and ScaleY scale glyphs and spacing. Zero defaults to 1.
	ScaleX, ScaleY float64
	// Wave, Amplitude and Period offset glyph i vertically by
	// Amplitude*sin(Wave + i*Period).
	Wave, Amplitude, Period float64
}

func (o TextOptions) scale() (float64, float64) {
	sx, sy := o.ScaleX, o.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// glyphCell returns the cell size of font.
func glyphCell(font *Bitmap) float64 {
	return float64(font.w / fontColumns)
}

// textStartX returns the x the first glyph of a line is drawn at. Centered
// text is shifted by half of (n+1) advances.
func textStartX(dx float64, n int, cw float64, opts TextOptions) float64 {
	sx, _ := opts.scale()
	switch opts.Align {
	case TextAlignCenter:
		return dx - float64(n+1)*(cw+opts.XOff)*sx/2
	case TextAlignRight:
		return dx - float64(n)*(cw+opts.XOff)*sx
	}
	return dx
}

// DrawText draws str with a monospace bitmap font, one glyph per byte,
// anchored at (dx, dy). A newline returns to the start x and moves down one
// scaled cell. Alignment is computed from the length of the whole string.
func (c *Canvas) DrawText(font *Bitmap, str string, dx, dy float64, opts TextOptions) {
	cw := glyphCell(font)
	ch := cw
	sx, sy := opts.scale()

	dx = textStartX(dx, len(str), cw, opts)
	x, y := dx, dy

	for i := 0; i < len(str); i++ {
		b := str[i]
		if b == '\n' {
			x = dx
			y += (ch + opts.YOff) * sy
			continue
		}

		yoff := math.Sin(opts.Wave+float64(i)*opts.Period) * opts.Amplitude
		c.DrawBitmapRegion(font,
			float64(b%fontColumns)*cw, float64(b/fontColumns)*ch, cw, ch,
			x, y+yoff, cw*sx, ch*sy)

		x += (cw + opts.XOff) * sx
	}
}

// MeasureText returns the width of the longest line and the total height of
// str as DrawText would lay it out, ignoring the wave.
func MeasureText(font *Bitmap, str string, opts TextOptions) (w, h float64) {
	cw := glyphCell(font)
	sx, sy := opts.scale()
	lines := 1
	n, longest := 0, 0
	for i := 0; i < len(str); i++ {
		if str[i] == '\n' {
			lines++
			n = 0
			continue
		}
		n++
		longest = max(longest, n)
	}
	w = float64(longest) * (cw + opts.XOff) * sx
	h = float64(lines)*cw*sy + float64(lines-1)*opts.YOff*sy
	return w, h
}
