package easel

import "testing"

func TestLoadingBarRect(t *testing.T) {
	got := LoadingBarRect(1024, 768)
	want := Rect{X: 384, Y: 368, Width: 256, Height: 32}
	if got != want {
		t.Errorf("LoadingBarRect(1024, 768) = %+v, want %+v", got, want)
	}
}

func TestDrawLoadingScreen(t *testing.T) {
	// 64x64: bar at (24, 31) 16x2, inner border from (20, 27), outer from (16, 23).
	c, dev := newTestCanvas(t, 64, 64, 64, 64)
	c.Frame(func(c *Canvas) {
		c.DrawLoadingScreen(0.5)
	})

	tests := []struct {
		name string
		x, y int
		want bool // white
	}{
		{"background", 0, 0, false},
		{"outer border", 17, 24, true},
		{"inner border", 21, 28, false},
		{"filled bar", 26, 31, true},
		{"empty bar", 36, 31, false},
	}
	for _, tt := range tests {
		want := black
		if tt.want {
			want = white
		}
		if got := dev.Screen().NRGBAAt(tt.x, tt.y); got != want {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, want)
		}
	}
	if c.ActiveShader() != ShaderNoTexture {
		t.Errorf("ActiveShader = %v, want %v", c.ActiveShader(), ShaderNoTexture)
	}
}

func TestDrawLoadingScreenClampsProgress(t *testing.T) {
	c, dev := newTestCanvas(t, 64, 64, 64, 64)
	c.Frame(func(c *Canvas) {
		c.DrawLoadingScreen(3)
	})
	assertPixel(t, dev, 39, 32, white)

	c.Frame(func(c *Canvas) {
		c.DrawLoadingScreen(-1)
	})
	assertPixel(t, dev, 24, 31, black)
}
