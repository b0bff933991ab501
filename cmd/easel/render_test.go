package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestRenderCommandWritesPNG(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := []byte("virtual: {width: 64, height: 48}\nwindow: {width: 64, height: 48}\n")
	if err := os.WriteFile(filepath.Join("configs", "easel.yaml"), cfg, 0o644); err != nil {
		t.Fatal(err)
	}

	// A BMP image exercises the registered decoder.
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	src.Set(1, 0, color.NRGBA{0, 0, 255, 255})
	f, err := os.Create("sprite.bmp")
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out := filepath.Join(dir, "frame.png")
	rootCmd.SetArgs([]string{"render", "--out", out, "--width", "128", "--height", "48", "--image", "sprite.bmp"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	rf, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer rf.Close()
	img, err := png.Decode(rf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 48 {
		t.Errorf("size = %v, want 128x48", b)
	}
	// Letterbox bars on both sides of the 64x48 image.
	r, g, b, a := img.At(0, 24).RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("bar pixel = %x %x %x %x, want opaque black", r, g, b, a)
	}
}

func TestDecodeImageErrors(t *testing.T) {
	if _, err := decodeImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("decodeImage(missing) should fail")
	}
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := decodeImage(path); err == nil {
		t.Error("decodeImage(junk) should fail")
	}
}
