package easel

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep is a single action in a test script.
type testStep struct {
	Action   string  `yaml:"action"`
	Label    string  `yaml:"label,omitempty"`
	Width    int     `yaml:"width,omitempty"`
	Height   int     `yaml:"height,omitempty"`
	Frames   int     `yaml:"frames,omitempty"`
	Contrast float64 `yaml:"contrast,omitempty"`
}

// testScript is the top-level structure of a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

var testActions = map[string]bool{
	"screenshot": true,
	"wait":       true,
	"resize":     true,
	"filter":     true,
}

// TestRunner plays a scripted sequence of canvas actions across frames for
// automated visual testing. Scripts are YAML (or JSON):
//
//	steps:
//	  - action: resize
//	    width: 1920
//	    height: 600
//	  - action: wait
//	    frames: 2
//	  - action: filter
//	    label: scanlines
//	    contrast: 1.2
//	  - action: screenshot
//	    label: wide
//
// A filter step enables the bitmap registered under label with
// RegisterFilter; an empty label disables the filter. A resize step resizes
// the canvas directly unless a resize func is set; Run sets one that resizes
// the window.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	filters   map[string]*Bitmap
	resize    func(w, h int)
}

// LoadTestScript parses a test script.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !testActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, filters: make(map[string]*Bitmap)}, nil
}

// RegisterFilter makes bmp available to filter steps under name.
func (r *TestRunner) RegisterFilter(name string, bmp *Bitmap) {
	r.filters[name] = bmp
}

// SetResizeFunc routes resize steps to fn instead of Canvas.Resize.
func (r *TestRunner) SetResizeFunc(fn func(w, h int)) {
	r.resize = fn
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Call it once per frame before
// drawing.
func (r *TestRunner) Step(c *Canvas) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		c.Screenshot(st.Label)
	case "resize":
		if r.resize != nil {
			r.resize(st.Width, st.Height)
			break
		}
		c.Resize(st.Width, st.Height)
	case "filter":
		if st.Label == "" {
			c.DisableFilter()
			break
		}
		bmp, ok := r.filters[st.Label]
		if !ok {
			logger.Error("test script: unknown filter", "label", st.Label)
			break
		}
		contrast := st.Contrast
		if contrast == 0 {
			contrast = 1
		}
		c.DisableFilter()
		c.ToggleFilter(bmp, contrast)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
