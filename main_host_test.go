//go:build !tinygo

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"calc/hal"
)

func TestWriteShotScales(t *testing.T) {
	h := hal.New()
	fb := h.Display().Framebuffer()
	fb.ClearRGB(0, 0, 255)

	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writeShot(h, path, 2); err != nil {
		t.Fatalf("writeShot: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2*fb.Width() || b.Dy() != 2*fb.Height() {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, _ := img.At(5, 5).RGBA()
	if r != 0 || g != 0 || b>>8 != 255 {
		t.Fatalf("pixel = %d,%d,%d", r, g, b)
	}
}

func TestWriteShotBadPath(t *testing.T) {
	h := hal.New()
	if err := writeShot(h, filepath.Join(t.TempDir(), "missing", "shot.png"), 1); err == nil {
		t.Fatal("expected error")
	}
}
