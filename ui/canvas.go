package ui

import (
	"image"
	"image/color"
	"math"

	"calc/hal"
)

// fbDisplayer adapts an RGB565 framebuffer to drivers.Displayer so tinyfont
// can draw into it. Every logical pixel becomes a scale x scale block placed
// relative to origin.
type fbDisplayer struct {
	fb     hal.Framebuffer
	origin image.Point
	scale  int
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil || d.scale <= 0 {
		return 0, 0
	}
	return int16(d.fb.Width() / d.scale), int16(d.fb.Height() / d.scale)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	s := d.scale
	if s <= 0 {
		s = 1
	}
	px := d.origin.X + int(x)*s
	py := d.origin.Y + int(y)*s
	fillRect(d.fb, image.Rect(px, py, px+s, py+s), c)
}

func (d *fbDisplayer) Display() error { return nil }

func pixel565(c color.RGBA) uint16 { return hal.RGB565(c.R, c.G, c.B) }

// fillRect fills r clipped to the framebuffer.
func fillRect(fb hal.Framebuffer, r image.Rectangle, c color.RGBA) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := fb.Buffer()
	if buf == nil {
		return
	}
	r = r.Intersect(image.Rect(0, 0, fb.Width(), fb.Height()))
	if r.Empty() {
		return
	}

	pixel := pixel565(c)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	stride := fb.StrideBytes()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * stride
		for x := r.Min.X; x < r.Max.X; x++ {
			off := row + x*2
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// fillRoundRect fills r with corners of the given radius. A radius of half
// the shorter side gives a circle or a capsule.
func fillRoundRect(fb hal.Framebuffer, r image.Rectangle, radius int, c color.RGBA) {
	if r.Empty() {
		return
	}
	if m := min(r.Dx(), r.Dy()) / 2; radius > m {
		radius = m
	}
	if radius <= 0 {
		fillRect(fb, r, c)
		return
	}

	rr := float64(radius)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y - r.Min.Y
		var dy float64
		switch {
		case row < radius:
			dy = rr - (float64(row) + 0.5)
		case row >= r.Dy()-radius:
			dy = float64(row) + 0.5 - float64(r.Dy()-radius)
		}
		inset := 0
		if dy > 0 {
			inset = radius - int(math.Sqrt(rr*rr-dy*dy)+0.5)
		}
		fillRect(fb, image.Rect(r.Min.X+inset, y, r.Max.X-inset, y+1), c)
	}
}

// lighten mixes c toward white by n/255.
func lighten(c color.RGBA, n uint8) color.RGBA {
	mix := func(v uint8) uint8 {
		return v + uint8((uint16(255-v)*uint16(n))/255)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
