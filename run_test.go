package easel

import "testing"

type idleGame struct{ updates int }

func (g *idleGame) Update(ev *Event) error { g.updates++; return nil }
func (g *idleGame) Redraw(c *Canvas)       {}

func TestRunnerResizeStepGoesThroughWindow(t *testing.T) {
	tr, err := LoadTestScript([]byte(`steps: [{action: resize, width: 1920, height: 600}]`))
	if err != nil {
		t.Fatal(err)
	}
	g := &idleGame{}
	r := newRunner(g, RunConfig{WindowWidth: 800, WindowHeight: 600, TestRunner: tr})

	var gotW, gotH int
	r.setWindowSize = func(w, h int) { gotW, gotH = w, h }

	if err := r.Update(); err != nil {
		t.Fatal(err)
	}
	if gotW != 1920 || gotH != 600 {
		t.Errorf("window size = %dx%d, want 1920x600", gotW, gotH)
	}
	if w, h := r.canvas.ScreenSize(); w != 800 || h != 600 {
		t.Errorf("ScreenSize = %dx%d before Layout, want 800x600", w, h)
	}
	if g.updates != 1 {
		t.Errorf("game updates = %d, want 1", g.updates)
	}

	// The window reports its new size through Layout.
	for i := 0; i < 2; i++ {
		if w, h := r.Layout(1920, 600); w != 1920 || h != 600 {
			t.Errorf("Layout = %dx%d, want 1920x600", w, h)
		}
		if w, h := r.canvas.ScreenSize(); w != 1920 || h != 600 {
			t.Errorf("ScreenSize = %dx%d after Layout, want 1920x600", w, h)
		}
	}
	want := Letterbox(DefaultVirtualWidth, DefaultVirtualHeight, 1920, 600)
	if got := r.canvas.Letterbox(); got != want {
		t.Errorf("Letterbox = %+v, want %+v", got, want)
	}
	if !tr.Done() {
		t.Error("test runner not done")
	}
}

func TestRunnerResizeIgnoresEmptySize(t *testing.T) {
	r := newRunner(&idleGame{}, RunConfig{WindowWidth: 800, WindowHeight: 600})
	called := false
	r.setWindowSize = func(w, h int) { called = true }
	r.resizeWindow(0, 600)
	r.resizeWindow(800, -1)
	if called {
		t.Error("setWindowSize called for an empty size")
	}
}

func TestRunnerLayoutTracksWindow(t *testing.T) {
	r := newRunner(&idleGame{}, RunConfig{WindowWidth: 800, WindowHeight: 600})
	r.Layout(1024, 1000)
	if w, h := r.canvas.ScreenSize(); w != 1024 || h != 1000 {
		t.Errorf("ScreenSize = %dx%d, want 1024x1000", w, h)
	}
	if w, h := r.canvas.Width(), r.canvas.Height(); w != DefaultVirtualWidth || h != DefaultVirtualHeight {
		t.Errorf("virtual size = %dx%d, want %dx%d", w, h, DefaultVirtualWidth, DefaultVirtualHeight)
	}
}
