package easel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultScreenshotDir is where screenshots go when no directory is set.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the next presented frame. The PNG
// is written to the screenshot directory with a timestamped filename.
func (c *Canvas) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// SetScreenshotDir sets the directory screenshots are written to.
func (c *Canvas) SetScreenshotDir(dir string) {
	c.screenshotDir = dir
}

// CaptureScreen reads back the physical surface as a top-down image. The
// current render target stays bound afterwards.
func (c *Canvas) CaptureScreen() *image.NRGBA {
	c.dev.BindFramebuffer(0)
	if c.target != nil {
		defer c.dev.BindFramebuffer(c.target.fb)
	}
	w, h := c.dev.FramebufferSize()
	pix := make([]byte, 4*w*h)
	c.dev.ReadPixels(pix)
	return flipRows(w, h, pix)
}

// flushScreenshots captures the presented frame once for every queued label
// and writes each as a PNG file.
func (c *Canvas) flushScreenshots() {
	if len(c.screenshotQueue) == 0 {
		return
	}
	defer func() { c.screenshotQueue = c.screenshotQueue[:0] }()

	dir := c.screenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("screenshot: mkdir", "dir", dir, "err", err)
		return
	}

	img := c.CaptureScreen()
	stamp := time.Now().Format("20060102_150405")

	for _, label := range c.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := WritePNG(path, img); err != nil {
			logger.Error("screenshot", "err", err)
			continue
		}
		logger.Info("screenshot written", "path", path)
	}
}

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
