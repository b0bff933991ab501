package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/easel"
)

var (
	flagScript    string
	flagRunImage  string
	flagRunFont   string
	flagRunFilter string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and animate the demo scene",
	Long: `Opens a resizable window and animates the demo scene. The virtual
resolution from the config is letterboxed into the window.

A test script (YAML or JSON) can drive resizes, waits, filter changes and
screenshots:

  steps:
    - action: wait
      frames: 30
    - action: screenshot
      label: start

Examples:
  easel run
  easel run --image sprite.png --font font.png
  easel run --script smoke.yaml`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	runCmd.Flags().StringVar(&flagScript, "script", "", "Test script to run")
	runCmd.Flags().StringVar(&flagRunImage, "image", "", "Image to draw in the scene")
	runCmd.Flags().StringVar(&flagRunFont, "font", "", "16x16 glyph atlas for the title text (default: built-in 7x13 face)")
	runCmd.Flags().StringVar(&flagRunFilter, "filter", "", "Image registered as the \"filter\" test-script filter")
}

// demoGame adapts demoScene to easel.Game.
type demoGame struct {
	scene  *demoScene
	paths  [3]string // image, font, filter
	filter *easel.Bitmap
	script *easel.TestRunner

	time    float64
	started bool
}

func (g *demoGame) onLoad(ev *easel.Event) {
	c := ev.Canvas
	var bitmaps [3]*easel.Bitmap
	for i, path := range g.paths {
		filter := easel.FilterNearest
		if i == 2 {
			filter = easel.FilterLinear
		}
		bmp, err := loadBitmap(c, path, filter)
		if err != nil {
			logger.Error("load image", "path", path, "err", err)
			continue
		}
		bitmaps[i] = bmp
	}
	if bitmaps[1] == nil {
		bitmaps[1] = defaultFont(c)
	}
	g.scene = newDemoScene(bitmaps[0], bitmaps[1])
	g.filter = bitmaps[2]
	if g.script != nil && g.filter != nil {
		g.script.RegisterFilter("filter", g.filter)
	}
}

func (g *demoGame) Update(ev *easel.Event) error {
	if !g.started {
		ev.Transition.Activate(false, easel.TransitionFade, 1.0/30, nil, easel.ColorBlack)
		g.started = true
	}
	if g.script != nil && g.script.Done() {
		return easel.ErrQuit
	}
	g.time += ev.Step
	g.scene.update(ev.Step)
	return nil
}

func (g *demoGame) Redraw(c *easel.Canvas) {
	g.scene.draw(c, g.time)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	applyDebug(cfg)

	game := &demoGame{paths: [3]string{flagRunImage, flagRunFont, flagRunFilter}}
	if flagScript != "" {
		data, err := os.ReadFile(flagScript)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		game.script, err = easel.LoadTestScript(data)
		if err != nil {
			return err
		}
	}

	return easel.Run(game, easel.RunConfig{
		Title:         cfg.Title,
		WindowWidth:   cfg.Window.Width,
		WindowHeight:  cfg.Window.Height,
		VirtualWidth:  cfg.Virtual.Width,
		VirtualHeight: cfg.Virtual.Height,
		FrameSkip:     cfg.FrameSkip,
		OnLoad:        game.onLoad,
		Debug:         cfg.Debug || flagDebug,
		ScreenshotDir: cfg.ScreenshotDir,
		TestRunner:    game.script,
	})
}
