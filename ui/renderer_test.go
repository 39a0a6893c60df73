package ui

import (
	"image"
	"image/color"
	"testing"

	"calc/engine"
	"calc/hal"
	"calc/keypad"
)

type memFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newMemFB(w, h int) *memFB {
	return &memFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int        { return f.w * 2 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) Present() error          { f.presents++; return nil }

func (f *memFB) ClearRGB(r, g, b uint8) {
	fillRect(f, image.Rect(0, 0, f.w, f.h), color.RGBA{R: r, G: g, B: b, A: 255})
}

func (f *memFB) at(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func (f *memFB) is(x, y int, c color.RGBA) bool {
	return f.at(x, y) == pixel565(c)
}

// inkBounds returns the bounding box of foreground pixels inside r.
func (f *memFB) inkBounds(r image.Rectangle) image.Rectangle {
	var out image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if f.is(x, y, keypad.Foreground) {
				out = out.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return out
}

func newTestRenderer(t *testing.T) (*Renderer, *memFB) {
	t.Helper()
	fb := newMemFB(320, 320)
	r, err := NewRenderer(fb)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r, fb
}

func keyTop(k keypad.Key) image.Point {
	return image.Pt((k.Rect.Min.X+k.Rect.Max.X)/2, k.Rect.Min.Y+2)
}

func TestNewRendererRejectsMissingFramebuffer(t *testing.T) {
	if _, err := NewRenderer(nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestDrawBackgroundAndKeys(t *testing.T) {
	r, fb := newTestRenderer(t)
	if err := r.Draw(Frame{Display: "0", Focus: -1, Pressed: -1}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d", fb.presents)
	}
	if !fb.is(0, 0, keypad.Background) {
		t.Fatalf("corner = %#x", fb.at(0, 0))
	}
	for _, k := range r.Grid().Keys {
		p := keyTop(k)
		if !fb.is(p.X, p.Y, keypad.Color(k.Button)) {
			t.Fatalf("%v fill at %v = %#x", k.Button, p, fb.at(p.X, p.Y))
		}
		// Rounded corners leave the rect corner in the background color.
		if !fb.is(k.Rect.Min.X, k.Rect.Min.Y, keypad.Background) {
			t.Fatalf("%v corner is not rounded", k.Button)
		}
		if ink := fb.inkBounds(k.Rect); ink.Empty() {
			t.Fatalf("%v has no label", k.Button)
		}
	}
}

func TestDisplayRightAligned(t *testing.T) {
	r, fb := newTestRenderer(t)
	if err := r.Draw(Frame{Display: "12", Focus: -1, Pressed: -1}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	box := r.Grid().Display
	ink := fb.inkBounds(box)
	if ink.Empty() {
		t.Fatal("display text not drawn")
	}
	scale := r.DisplayScale("12")
	if box.Max.X-ink.Max.X > 2*scale {
		t.Fatalf("text ends at %d, display ends at %d", ink.Max.X, box.Max.X)
	}
	if ink.Dy() != 7*scale {
		t.Fatalf("glyph height = %d at scale %d", ink.Dy(), scale)
	}
}

func TestDisplayScale(t *testing.T) {
	r, _ := newTestRenderer(t)
	large := r.DisplayScale("12345")
	small := r.DisplayScale("123456")
	if large <= small {
		t.Fatalf("large %d <= small %d", large, small)
	}
	if small != max(1, large/2) {
		t.Fatalf("small = %d, large = %d", small, large)
	}
	box := r.Grid().Display
	for _, s := range []string{"123456789", engine.DisplayText("9999800001.0"), "-1.797693e+308"} {
		if w := textWidth(r.font, s) * r.DisplayScale(s); w > box.Dx() {
			t.Fatalf("%q is %dpx wide, display is %dpx", s, w, box.Dx())
		}
	}
}

func TestDrawFocusAndPressed(t *testing.T) {
	r, fb := newTestRenderer(t)
	g := r.Grid()
	five := g.Index(engine.Digit5)
	plus := g.Index(engine.Add)

	if err := r.Draw(Frame{Display: "0", Focus: five, Pressed: plus}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	k := g.Keys[five]
	above := image.Pt((k.Rect.Min.X+k.Rect.Max.X)/2, k.Rect.Min.Y-1)
	if !fb.is(above.X, above.Y, keypad.Focus) {
		t.Fatalf("focus ring missing at %v: %#x", above, fb.at(above.X, above.Y))
	}
	other := g.Keys[g.Index(engine.Digit6)]
	if fb.is((other.Rect.Min.X+other.Rect.Max.X)/2, other.Rect.Min.Y-1, keypad.Focus) {
		t.Fatal("unfocused key has a ring")
	}

	p := keyTop(g.Keys[plus])
	if fb.is(p.X, p.Y, keypad.Color(engine.Add)) {
		t.Fatal("pressed key not highlighted")
	}
	if !fb.is(p.X, p.Y, lighten(keypad.Color(engine.Add), 96)) {
		t.Fatalf("pressed fill = %#x", fb.at(p.X, p.Y))
	}
}

func TestFillRectClips(t *testing.T) {
	fb := newMemFB(4, 4)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	fillRect(fb, image.Rect(-5, -5, 2, 2), white)
	fillRect(fb, image.Rect(3, 3, 50, 50), white)
	if !fb.is(0, 0, white) || !fb.is(1, 1, white) || !fb.is(3, 3, white) {
		t.Fatal("clipped fill missing pixels")
	}
	if fb.is(2, 2, white) {
		t.Fatal("fill outside rect")
	}
}

func TestLighten(t *testing.T) {
	c := lighten(color.RGBA{R: 0, G: 100, B: 255, A: 255}, 255)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Fatalf("full lighten = %+v", c)
	}
	if got := lighten(color.RGBA{R: 10}, 0); got.R != 10 {
		t.Fatalf("zero lighten = %+v", got)
	}
}
