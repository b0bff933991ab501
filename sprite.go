package easel

// SpriteDrawer draws frames of a sprite sheet. Canvas.DrawSprite and
// Canvas.DrawSpriteFrame delegate to it.
type SpriteDrawer interface {
	// DrawFrame draws cell (column, row) of bmp into (dx, dy, dw, dh).
	DrawFrame(c *Canvas, bmp *Bitmap, column, row int, dx, dy, dw, dh float64, flip Flip)
	// Frame returns the cell of the current animation frame.
	Frame() (column, row int)
}

// Sprite tracks the current frame of a sheet of equal-size cells.
type Sprite struct {
	Width, Height float64

	column, row int
	timer       float64
}

// NewSprite creates a sprite with w x h cells.
func NewSprite(w, h float64) *Sprite {
	return &Sprite{Width: w, Height: h}
}

// Frame implements SpriteDrawer.
func (s *Sprite) Frame() (column, row int) { return s.column, s.row }

// Column returns the current column.
func (s *Sprite) Column() int { return s.column }

// Row returns the current row.
func (s *Sprite) Row() int { return s.row }

// SetFrame jumps to a cell and restarts the frame timer.
func (s *Sprite) SetFrame(column, row int) {
	s.column, s.row = column, row
	s.timer = 0
}

// Animate cycles columns start..end of row, advancing one column every speed
// steps. Switching rows restarts at start. A non-positive speed holds the
// frame.
func (s *Sprite) Animate(row, start, end int, speed, step float64) {
	if row != s.row {
		s.SetFrame(start, row)
	}
	if start == end {
		s.column = start
		return
	}
	if speed <= 0 {
		return
	}
	if s.column < start || s.column > end {
		s.column = start
	}
	s.timer += step
	for s.timer >= speed {
		s.timer -= speed
		s.column++
		if s.column > end {
			s.column = start
		}
	}
}

// DrawFrame implements SpriteDrawer. Flipping negates the destination size
// in place, so the flipped frame covers the same rectangle.
func (s *Sprite) DrawFrame(c *Canvas, bmp *Bitmap, column, row int, dx, dy, dw, dh float64, flip Flip) {
	if flip&FlipHorizontal != 0 {
		dx += dw
		dw = -dw
	}
	if flip&FlipVertical != 0 {
		dy += dh
		dh = -dh
	}
	c.DrawBitmapRegion(bmp,
		float64(column)*s.Width, float64(row)*s.Height, s.Width, s.Height,
		dx, dy, dw, dh)
}

// DrawSprite draws the current frame of spr into (dx, dy, dw, dh).
func (c *Canvas) DrawSprite(spr SpriteDrawer, bmp *Bitmap, dx, dy, dw, dh float64, flip Flip) {
	column, row := spr.Frame()
	spr.DrawFrame(c, bmp, column, row, dx, dy, dw, dh, flip)
}

// DrawSpriteFrame draws cell (column, row) of spr into (dx, dy, dw, dh).
func (c *Canvas) DrawSpriteFrame(spr SpriteDrawer, bmp *Bitmap, column, row int, dx, dy, dw, dh float64, flip Flip) {
	spr.DrawFrame(c, bmp, column, row, dx, dy, dw, dh, flip)
}
