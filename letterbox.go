package easel

// Letterbox fits a virtualW x virtualH image into a physicalW x physicalH
// surface preserving aspect ratio. When the surface is at least as wide as
// the image aspect, the image fills the height and is centered horizontally;
// otherwise it fills the width and is centered vertically.
//
// The result is in physical pixels with the origin at the top-left.
func Letterbox(virtualW, virtualH, physicalW, physicalH float64) Rect {
	if virtualW <= 0 || virtualH <= 0 || physicalW <= 0 || physicalH <= 0 {
		return Rect{}
	}
	ratio := virtualW / virtualH
	if physicalW/physicalH >= ratio {
		h := physicalH
		w := h * ratio
		return Rect{X: physicalW/2 - w/2, Y: 0, Width: w, Height: h}
	}
	w := physicalW
	h := w / ratio
	return Rect{X: 0, Y: physicalH/2 - h/2, Width: w, Height: h}
}
