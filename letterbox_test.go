package easel

import "testing"

func TestLetterbox(t *testing.T) {
	tests := []struct {
		name   string
		vw, vh float64
		pw, ph float64
		want   Rect
	}{
		{"exact fit", 1024, 768, 1024, 768, Rect{0, 0, 1024, 768}},
		{"pillarbox", 800, 600, 1920, 600, Rect{560, 0, 800, 600}},
		{"letterbox", 800, 600, 800, 1000, Rect{0, 200, 800, 600}},
		{"wide surface fits height", 1024, 768, 1920, 600, Rect{560, 0, 800, 600}},
		{"tall surface fits width", 1024, 768, 800, 1000, Rect{0, 200, 800, 600}},
		{"scaled up", 4, 3, 8, 6, Rect{0, 0, 8, 6}},
		{"zero surface", 800, 600, 0, 600, Rect{}},
		{"zero virtual", 0, 600, 800, 600, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Letterbox(tt.vw, tt.vh, tt.pw, tt.ph)
			if got != tt.want {
				t.Errorf("Letterbox(%v, %v, %v, %v) = %+v, want %+v", tt.vw, tt.vh, tt.pw, tt.ph, got, tt.want)
			}
		})
	}
}

func TestLetterboxPreservesAspect(t *testing.T) {
	for _, size := range [][2]float64{{1280, 720}, {640, 1136}, {3000, 400}} {
		r := Letterbox(1024, 768, size[0], size[1])
		assertNear(t, "aspect", r.Width/r.Height, 1024.0/768.0)
		if r.Width > size[0]+1e-9 || r.Height > size[1]+1e-9 {
			t.Errorf("Letterbox on %v = %+v exceeds the surface", size, r)
		}
		if r.X != 0 && r.Y != 0 {
			t.Errorf("Letterbox on %v = %+v, want one axis flush", size, r)
		}
	}
}

func TestLetterboxCentered(t *testing.T) {
	for _, size := range [][2]float64{{1920, 600}, {800, 1000}, {1024, 768}, {1366, 768}} {
		r := Letterbox(1024, 768, size[0], size[1])
		assertNear(t, "horizontal centering", r.X*2+r.Width, size[0])
		assertNear(t, "vertical centering", r.Y*2+r.Height, size[1])
		if r.X < 0 || r.Y < 0 {
			t.Errorf("Letterbox on %v = %+v, want non-negative offsets", size, r)
		}
	}
}

func TestCanvasLetterboxTracksResize(t *testing.T) {
	c, _ := newTestCanvas(t, 800, 600, 800, 600)
	c.Resize(1920, 600)
	if got, want := c.Letterbox(), (Rect{560, 0, 800, 600}); got != want {
		t.Errorf("Letterbox = %+v, want %+v", got, want)
	}
}
