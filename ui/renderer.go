// Package ui draws the calculator into a hal.Framebuffer.
package ui

import (
	"fmt"
	"image"

	"calc/engine"
	"calc/fonts/font6x8"
	"calc/hal"
	"calc/keypad"

	"tinygo.org/x/tinyfont"
)

// largeDisplayLen is the longest display text drawn at full size.
const largeDisplayLen = 5

// Frame is everything that changes between two draws.
type Frame struct {
	// Display is the raw display string; the renderer applies the
	// scientific-notation fallback itself.
	Display string
	// Focus is the focused key index, or -1 to hide the focus ring.
	Focus int
	// Pressed is the key index to draw highlighted, or -1.
	Pressed int
}

// Renderer owns the layout for one framebuffer.
type Renderer struct {
	fb   hal.Framebuffer
	grid keypad.Grid
	font tinyfont.Fonter

	largeScale int
	labelScale int
}

// NewRenderer lays the keypad out for fb's size.
func NewRenderer(fb hal.Framebuffer) (*Renderer, error) {
	if fb == nil {
		return nil, fmt.Errorf("ui: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("ui: unsupported pixel format %d", fb.Format())
	}
	g := keypad.Layout(fb.Width(), fb.Height())

	large := min(g.Display.Dy()/font6x8.Height, g.Display.Dx()/(font6x8.Width*largeDisplayLen))
	label := 1
	if len(g.Keys) > 0 {
		label = max(1, g.Keys[0].Rect.Dy()/(font6x8.Height*5/2))
	}
	return &Renderer{
		fb:         fb,
		grid:       g,
		font:       font6x8.Font,
		largeScale: max(1, large),
		labelScale: label,
	}, nil
}

// Grid returns the key layout used for drawing and hit testing.
func (r *Renderer) Grid() keypad.Grid { return r.grid }

// DisplayScale returns the glyph scale used for a display text.
func (r *Renderer) DisplayScale(text string) int {
	scale := r.largeScale
	if len(text) > largeDisplayLen {
		scale = max(1, r.largeScale/2)
	}
	return fitScale(r.font, text, scale, r.grid.Display.Dx())
}

// Draw renders f and presents the framebuffer.
func (r *Renderer) Draw(f Frame) error {
	r.fb.ClearRGB(keypad.Background.R, keypad.Background.G, keypad.Background.B)

	r.drawDisplay(engine.DisplayText(f.Display))
	for i, k := range r.grid.Keys {
		r.drawKey(k, i == f.Focus, i == f.Pressed)
	}
	return r.fb.Present()
}

func (r *Renderer) drawDisplay(text string) {
	scale := r.DisplayScale(text)
	box := r.grid.Display
	w := textWidth(r.font, text) * scale
	h := font6x8.Height * scale

	origin := image.Pt(box.Max.X-w, box.Max.Y-h)
	if origin.Y < box.Min.Y {
		origin.Y = box.Min.Y
	}
	d := &fbDisplayer{fb: r.fb, origin: origin, scale: scale}
	tinyfont.WriteLine(d, r.font, 0, font6x8.Height-1, text, keypad.Foreground)
}

func (r *Renderer) drawKey(k keypad.Key, focused, pressed bool) {
	radius := min(k.Rect.Dx(), k.Rect.Dy()) / 2
	if focused {
		ring := max(1, r.grid.Gap/3)
		fillRoundRect(r.fb, k.Rect.Inset(-ring), radius+ring, keypad.Focus)
	}

	fill := keypad.Color(k.Button)
	if pressed {
		fill = lighten(fill, 96)
	}
	fillRoundRect(r.fb, k.Rect, radius, fill)

	label := k.Button.String()
	scale := fitScale(r.font, label, r.labelScale, k.Rect.Dx()-2*r.grid.Gap)
	w := textWidth(r.font, label) * scale
	h := font6x8.Height * scale
	c := k.Rect.Min.Add(k.Rect.Max).Div(2)
	origin := image.Pt(c.X-w/2, c.Y-h/2)
	d := &fbDisplayer{fb: r.fb, origin: origin, scale: scale}
	tinyfont.WriteLine(d, r.font, 0, font6x8.Height-1, label, keypad.Foreground)
}

func textWidth(f tinyfont.Fonter, s string) int {
	_, outer := tinyfont.LineWidth(f, s)
	return int(outer)
}

// fitScale shrinks scale until s fits in width, never below 1.
func fitScale(f tinyfont.Fonter, s string, scale, width int) int {
	w := textWidth(f, s)
	for scale > 1 && w*scale > width {
		scale--
	}
	return max(1, scale)
}
