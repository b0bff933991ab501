package easel

import (
	"strings"
	"testing"
)

func TestLoadTestScriptYAML(t *testing.T) {
	data := []byte(`
steps:
  - action: resize
    width: 1920
    height: 600
  - action: wait
    frames: 3
  - action: screenshot
    label: wide
`)
	r, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(r.steps))
	}
	if r.steps[0].Width != 1920 || r.steps[0].Height != 600 {
		t.Errorf("resize = %dx%d, want 1920x600", r.steps[0].Width, r.steps[0].Height)
	}
	if r.steps[1].Frames != 3 {
		t.Errorf("frames = %d, want 3", r.steps[1].Frames)
	}
	if r.steps[2].Label != "wide" {
		t.Errorf("label = %q, want wide", r.steps[2].Label)
	}
}

func TestLoadTestScriptJSON(t *testing.T) {
	data := []byte(`{"steps": [{"action": "screenshot", "label": "a"}, {"action": "filter"}]}`)
	r, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.steps) != 2 || r.steps[1].Action != "filter" {
		t.Errorf("steps = %+v", r.steps)
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name, data, errPart string
	}{
		{"invalid", `steps: [`, "parse test script"},
		{"empty", `steps: []`, "no steps"},
		{"unknown action", `steps: [{action: click}]`, `unknown action "click"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("err = %v, want it to contain %q", err, tt.errPart)
			}
		})
	}
}

func TestTestRunnerWait(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4, 4, 4)
	r, err := LoadTestScript([]byte(`steps: [{action: wait, frames: 3}, {action: screenshot, label: x}]`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		r.Step(c)
		if len(c.screenshotQueue) != 0 {
			t.Fatalf("screenshot queued on frame %d, want after the wait", i)
		}
	}
	r.Step(c)
	if len(c.screenshotQueue) != 1 {
		t.Fatalf("queue len = %d, want 1", len(c.screenshotQueue))
	}
	if !r.Done() {
		t.Error("Done = false after the last step")
	}
	r.Step(c)
	if len(c.screenshotQueue) != 1 {
		t.Error("finished runner kept stepping")
	}
}

func TestTestRunnerResize(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4, 4, 4)
	r, err := LoadTestScript([]byte(`steps: [{action: resize, width: 8, height: 2}]`))
	if err != nil {
		t.Fatal(err)
	}
	r.Step(c)
	if w, h := c.ScreenSize(); w != 8 || h != 2 {
		t.Errorf("ScreenSize = %dx%d, want 8x2", w, h)
	}
	if !r.Done() {
		t.Error("Done = false")
	}
}

func TestTestRunnerFilter(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4, 4, 4)
	bmp := solidBitmap(t, c, 1, 1, red, FilterNearest)
	r, err := LoadTestScript([]byte(`
steps:
  - action: filter
    label: tint
  - action: filter
    label: tint
    contrast: 2
  - action: filter
    label: missing
  - action: filter
`))
	if err != nil {
		t.Fatal(err)
	}
	r.RegisterFilter("tint", bmp)

	r.Step(c)
	if !c.FilterEnabled() || c.filter.contrast != 1 {
		t.Fatalf("filter = %+v, want tint with contrast 1", c.filter)
	}
	// Re-selecting the active filter keeps it enabled with the new contrast.
	r.Step(c)
	if !c.FilterEnabled() || c.filter.contrast != 2 {
		t.Fatalf("filter = %+v, want tint with contrast 2", c.filter)
	}
	r.Step(c)
	if !c.FilterEnabled() {
		t.Error("unknown filter label should leave the filter unchanged")
	}
	r.Step(c)
	if c.FilterEnabled() {
		t.Error("empty label should disable the filter")
	}
}
