package easel

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// baseTPS is the update rate with no frame skip.
const baseTPS = 60

// Event is passed to Game.Update each logic step.
type Event struct {
	// Step is the number of base frames one update covers (frame skip + 1).
	Step float64

	Canvas     *Canvas
	Transition *TransitionManager
}

// ToggleFilter toggles the presentation filter. See Canvas.ToggleFilter.
func (e *Event) ToggleFilter(bmp *Bitmap, contrast float64) {
	e.Canvas.ToggleFilter(bmp, contrast)
}

// NewMesh creates a mesh owned by the caller.
func (e *Event) NewMesh(vertices, uvs []float32, indices []uint16) (*Mesh, error) {
	return e.Canvas.NewMesh(vertices, uvs, indices)
}

// DisposeMesh disposes a mesh created with NewMesh.
func (e *Event) DisposeMesh(m *Mesh) {
	e.Canvas.DestroyMesh(m)
}

// Game is the scene layer driven by Run.
type Game interface {
	// Update advances game logic by one step. Returning ErrQuit or any other
	// error ends Run.
	Update(ev *Event) error
	// Redraw draws the game in virtual coordinates. The canvas is already
	// redirected to the virtual framebuffer.
	Redraw(c *Canvas)
}

// ProgressReporter is implemented by a LoadState that can report loading
// progress in [0, 1] for the loading screen.
type ProgressReporter interface {
	Progress() float64
}

// ErrQuit ends Run without reporting an error.
var ErrQuit = errors.New("easel: quit")

// RunConfig configures Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// WindowWidth and WindowHeight are the initial window size. Zero uses the
	// virtual size.
	WindowWidth, WindowHeight int
	// VirtualWidth and VirtualHeight are the fixed logical resolution. Zero
	// uses DefaultVirtualWidth / DefaultVirtualHeight.
	VirtualWidth, VirtualHeight int
	// FrameSkip skips this many base frames per update: the update rate is
	// 60/(FrameSkip+1) per second and Event.Step is FrameSkip+1.
	FrameSkip int
	// LoadState gates the game until assets are loaded; the loading screen is
	// drawn meanwhile. Nil means loaded.
	LoadState LoadState
	// OnLoad runs once, on the first update after loading completes.
	OnLoad func(ev *Event)
	// Debug logs frame statistics.
	Debug bool
	// ScreenshotDir is where screenshots are written. Empty uses
	// DefaultScreenshotDir.
	ScreenshotDir string
	// TestRunner, when set, is stepped each update.
	TestRunner *TestRunner
}

// runner adapts a Game to ebiten.Game.
type runner struct {
	game   Game
	cfg    RunConfig
	dev    *EbitenDevice
	canvas *Canvas
	event  *Event

	// setWindowSize resizes the window; Layout then resizes the canvas.
	setWindowSize func(w, h int)

	initialized bool
}

func newRunner(game Game, cfg RunConfig) *runner {
	if cfg.FrameSkip < 0 {
		cfg.FrameSkip = 0
	}
	dev := NewEbitenDevice()
	canvas := NewCanvas(dev, CanvasConfig{
		VirtualWidth:  cfg.VirtualWidth,
		VirtualHeight: cfg.VirtualHeight,
		ScreenWidth:   cfg.WindowWidth,
		ScreenHeight:  cfg.WindowHeight,
		LoadState:     cfg.LoadState,
		Debug:         cfg.Debug,
	})
	canvas.SetScreenshotDir(cfg.ScreenshotDir)
	r := &runner{
		game:   game,
		cfg:    cfg,
		dev:    dev,
		canvas: canvas,
		event: &Event{
			Step:       float64(cfg.FrameSkip + 1),
			Canvas:     canvas,
			Transition: NewTransitionManager(),
		},
		setWindowSize: ebiten.SetWindowSize,
	}
	if cfg.TestRunner != nil {
		cfg.TestRunner.SetResizeFunc(r.resizeWindow)
	}
	return r
}

// resizeWindow asks for a new window size. The canvas follows on the next
// Layout, so the frame being drawn keeps a consistent surface size.
func (r *runner) resizeWindow(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	logger.Debug("window resize requested", "width", w, "height", h)
	r.setWindowSize(w, h)
}

// Run opens a window and drives game until it returns an error or the
// window is closed. It must be called from the main goroutine.
func Run(game Game, cfg RunConfig) error {
	r := newRunner(game, cfg)

	w, h := r.canvas.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(baseTPS / (r.cfg.FrameSkip + 1))

	err := ebiten.RunGame(r)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (r *runner) loaded() bool {
	return r.cfg.LoadState == nil || r.cfg.LoadState.HasLoaded()
}

// Update implements ebiten.Game.
func (r *runner) Update() error {
	if !r.initialized && r.loaded() {
		if r.cfg.OnLoad != nil {
			r.cfg.OnLoad(r.event)
		}
		r.initialized = true
	}
	if tr := r.cfg.TestRunner; tr != nil {
		tr.Step(r.canvas)
	}
	if r.initialized {
		if err := r.game.Update(r.event); err != nil {
			return err
		}
	}
	r.event.Transition.Update(r.event.Step)
	return nil
}

// Draw implements ebiten.Game.
func (r *runner) Draw(screen *ebiten.Image) {
	r.dev.SetScreen(screen)
	r.canvas.Frame(func(c *Canvas) {
		if !r.initialized {
			c.DrawLoadingScreen(r.progress())
			return
		}
		r.game.Redraw(c)
		r.event.Transition.Draw(c)
	})
}

func (r *runner) progress() float64 {
	if p, ok := r.cfg.LoadState.(ProgressReporter); ok {
		return p.Progress()
	}
	return 0
}

// Layout implements ebiten.Game. The screen tracks the window size; the
// virtual resolution is letterboxed into it.
func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := r.canvas.ScreenSize(); w != outsideWidth || h != outsideHeight {
		r.canvas.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
