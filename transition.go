package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionKind selects the effect drawn by a TransitionManager.
type TransitionKind uint8

const (
	TransitionNone TransitionKind = iota
	TransitionFade
)

// TransitionManager runs screen transitions. A fade that starts fading in
// covers the screen with its color, runs the callback, and then uncovers it;
// one that starts fading out only uncovers.
//
// Time runs from 1 to 0 over 1/speed steps in each phase.
type TransitionManager struct {
	tween    *gween.Tween
	elapsed  float32
	duration float32

	timer    float64
	fadeIn   bool
	kind     TransitionKind
	color    Color
	active   bool
	speed    float64
	callback func()
}

// NewTransitionManager returns an inactive manager.
func NewTransitionManager() *TransitionManager {
	return &TransitionManager{speed: 1, color: ColorBlack}
}

// Activate starts a transition. A nil callback is allowed. The manager is
// returned for chaining.
func (t *TransitionManager) Activate(fadeIn bool, kind TransitionKind, speed float64, callback func(), color Color) *TransitionManager {
	if speed <= 0 {
		speed = 1
	}
	t.fadeIn = fadeIn
	t.kind = kind
	t.speed = speed
	t.callback = callback
	t.color = color
	t.active = true
	t.restart(0)
	return t
}

// restart begins a phase with elapsed steps already consumed.
func (t *TransitionManager) restart(elapsed float32) {
	t.duration = float32(1 / t.speed)
	t.tween = gween.New(1, 0, t.duration, ease.Linear)
	t.elapsed = elapsed
	v, _ := t.tween.Set(elapsed)
	t.timer = float64(v)
}

// Update advances the transition by step frames.
func (t *TransitionManager) Update(step float64) {
	if !t.active {
		return
	}
	t.elapsed += float32(step)
	v, done := t.tween.Set(t.elapsed)
	t.timer = float64(v)
	if !done {
		return
	}

	t.fadeIn = !t.fadeIn
	if !t.fadeIn {
		t.restart(t.elapsed - t.duration)
		if t.callback != nil {
			t.callback()
		}
		return
	}
	t.active = false
	t.timer = 0
}

// Draw covers the virtual surface with the transition color. It must be
// called inside DrawToFramebuffer; it resets the transform stack and leaves
// the flat-color shader active with a white color.
func (t *TransitionManager) Draw(c *Canvas) {
	if !t.active || t.kind == TransitionNone {
		return
	}

	c.ChangeShader(ShaderNoTexture)
	c.Transform().LoadIdentity().SetView(float64(c.Width()), float64(c.Height())).Use()

	a := t.timer
	if t.fadeIn {
		a = 1 - a
	}

	switch t.kind {
	case TransitionFade:
		c.SetColor(t.color.R, t.color.G, t.color.B, t.color.A*a)
		c.Fill()
	}
	c.ResetColor()
}

// Active reports whether a transition is running.
func (t *TransitionManager) Active() bool { return t.active }

// FadingIn reports whether the transition is in its covering phase.
func (t *TransitionManager) FadingIn() bool { return t.fadeIn }

// Time returns the phase timer, from 1 down to 0.
func (t *TransitionManager) Time() float64 { return t.timer }

// Speed returns the speed passed to Activate.
func (t *TransitionManager) Speed() float64 { return t.speed }

// Deactivate stops the transition without running the callback.
func (t *TransitionManager) Deactivate() {
	t.active = false
	t.timer = 0
}
