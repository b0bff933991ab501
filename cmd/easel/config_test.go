package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigEmbeddedDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "easel demo" {
		t.Errorf("Title = %q, want %q", cfg.Title, "easel demo")
	}
	if cfg.Virtual != (Size{1024, 768}) || cfg.Window != (Size{1024, 768}) {
		t.Errorf("sizes = %+v %+v, want 1024x768", cfg.Virtual, cfg.Window)
	}
	if cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q", cfg.ScreenshotDir)
	}
	if cfg.Source != "built-in" {
		t.Errorf("Source = %q, want built-in", cfg.Source)
	}
}

func TestLoadConfigLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("title: local\nvirtual:\n  width: 320\n  height: 240\n")
	if err := os.WriteFile(filepath.Join("configs", "easel.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "local" || cfg.Virtual != (Size{320, 240}) {
		t.Errorf("cfg = %+v", cfg)
	}
	// Window keeps the built-in default.
	if cfg.Window != (Size{1024, 768}) {
		t.Errorf("Window = %+v, want default", cfg.Window)
	}
	if cfg.Source != localConfigPath {
		t.Errorf("Source = %q, want %q", cfg.Source, localConfigPath)
	}
	if out := renderInfo(cfg); !strings.Contains(out, localConfigPath) || strings.Contains(out, "built-in") {
		t.Errorf("info output should name %s:\n%s", localConfigPath, out)
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("window: {width: 1920, height: 600}\nframe_skip: -3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window != (Size{1920, 600}) {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.FrameSkip != 0 {
		t.Errorf("FrameSkip = %d, want clamped to 0", cfg.FrameSkip)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadConfig(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("missing file err = %v", err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("window: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("bad file err = %v", err)
	}
}

func TestRenderInfoShowsLetterbox(t *testing.T) {
	cfg := defaultConfig()
	cfg.Window = Size{1920, 600}
	cfg.Virtual = Size{800, 600}
	out := renderInfo(cfg)
	if !strings.Contains(out, "560,0 800x600") {
		t.Errorf("info output missing letterbox:\n%s", out)
	}
}
