// Package keypad describes the calculator's on-screen key grid: which button
// sits where, how big it is for a given screen, and what color it is drawn in.
package keypad

import (
	"image"
	"image/color"

	"calc/engine"
)

// Rows is the fixed key arrangement, top to bottom.
var Rows = [][]engine.Button{
	{engine.Clear, engine.Negate, engine.Percent, engine.Divide},
	{engine.Digit7, engine.Digit8, engine.Digit9, engine.Multiply},
	{engine.Digit4, engine.Digit5, engine.Digit6, engine.Subtract},
	{engine.Digit1, engine.Digit2, engine.Digit3, engine.Add},
	{engine.Digit0, engine.Decimal, engine.Equals},
}

const (
	columns = 4

	// refWidth and refGap give the key spacing at the reference screen width.
	refWidth = 390
	refGap   = 12
	minGap   = 2
)

// Key is one button placed on screen.
type Key struct {
	Button engine.Button
	Rect   image.Rectangle
	Row    int
	Col    int
}

// Wide reports whether the key spans two cells.
func (k Key) Wide() bool { return k.Button == engine.Digit0 }

// Grid is the computed layout for one screen size.
type Grid struct {
	Keys    []Key
	Display image.Rectangle
	Gap     int

	rows [][]int
}

// Layout places the display line and every key on a w x h screen.
//
// Keys fill the width with equal gaps and are never taller than wide; the 0
// key is two cells plus one gap wide. The grid is bottom aligned and the
// display fills the space above it.
func Layout(w, h int) Grid {
	gap := refGap * w / refWidth
	if gap < minGap {
		gap = minGap
	}

	kw := (w - (columns+1)*gap) / columns
	if kw < 1 {
		kw = 1
	}
	// Leave at least a fifth of the height for the display.
	kh := (h - h/5 - (len(Rows)+1)*gap) / len(Rows)
	if kw < kh {
		kh = kw
	}
	if kh < 1 {
		kh = 1
	}

	gridW := columns*kw + (columns-1)*gap
	left := (w - gridW) / 2
	top := h - len(Rows)*(kh+gap)

	g := Grid{Gap: gap, rows: make([][]int, len(Rows))}
	for r, row := range Rows {
		x := left
		y := top + r*(kh+gap)
		for c, b := range row {
			kwid := kw
			if b == engine.Digit0 {
				kwid = 2*kw + gap
			}
			g.rows[r] = append(g.rows[r], len(g.Keys))
			g.Keys = append(g.Keys, Key{
				Button: b,
				Rect:   image.Rect(x, y, x+kwid, y+kh),
				Row:    r,
				Col:    c,
			})
			x += kwid + gap
		}
	}

	g.Display = image.Rect(left, gap, left+gridW, top-gap)
	if g.Display.Dy() < 0 {
		g.Display.Max.Y = g.Display.Min.Y
	}
	return g
}

// Hit returns the key under (x, y).
func (g Grid) Hit(x, y int) (Key, bool) {
	p := image.Pt(x, y)
	for _, k := range g.Keys {
		if p.In(k.Rect) {
			return k, true
		}
	}
	return Key{}, false
}

// Index returns the position of b in Keys, or -1.
func (g Grid) Index(b engine.Button) int {
	for i, k := range g.Keys {
		if k.Button == b {
			return i
		}
	}
	return -1
}

// Direction is a focus move.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Move returns the key index reached from i in direction dir. Moves off the
// edge of the grid stay put. Vertical moves pick the key in the next row
// whose center is closest horizontally, so the wide 0 key is reachable from
// both 1 and 2.
func (g Grid) Move(i int, dir Direction) int {
	if i < 0 || i >= len(g.Keys) {
		return 0
	}
	k := g.Keys[i]
	row := g.rows[k.Row]

	switch dir {
	case Left:
		if k.Col > 0 {
			return row[k.Col-1]
		}
	case Right:
		if k.Col+1 < len(row) {
			return row[k.Col+1]
		}
	case Up, Down:
		r := k.Row - 1
		if dir == Down {
			r = k.Row + 1
		}
		if r < 0 || r >= len(g.rows) {
			return i
		}
		cx := (k.Rect.Min.X + k.Rect.Max.X) / 2
		best, bestDist := i, -1
		for _, j := range g.rows[r] {
			o := g.Keys[j].Rect
			d := (o.Min.X+o.Max.X)/2 - cx
			if d < 0 {
				d = -d
			}
			if bestDist < 0 || d < bestDist {
				best, bestDist = j, d
			}
		}
		return best
	}
	return i
}

var (
	// Background is the screen color behind the keys.
	Background = color.RGBA{R: 22, G: 22, B: 22, A: 255}
	// Foreground is used for the display text and key labels.
	Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Focus outlines the key selected with the navigation keys.
	Focus = color.RGBA{R: 255, G: 204, B: 0, A: 255}

	operatorColor = color.RGBA{R: 175, G: 82, B: 222, A: 255}
	functionColor = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	digitColor    = color.RGBA{R: 55, G: 55, B: 55, A: 255}
)

// Color returns the fill color of b's key.
func Color(b engine.Button) color.RGBA {
	switch b.Category() {
	case engine.CategoryOperator, engine.CategoryEquals:
		return operatorColor
	case engine.CategoryClear, engine.CategoryNegate, engine.CategoryPercent:
		return functionColor
	default:
		return digitColor
	}
}
