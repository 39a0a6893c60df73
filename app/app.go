package app

import (
	"errors"
	"fmt"
	"time"

	"calc/engine"
	"calc/hal"
	"calc/internal/buildinfo"
	"calc/keypad"
	"calc/ui"
)

// flashTicks is how long a pressed key stays highlighted, in ticks (ms).
const flashTicks = 120

// Config selects optional behavior.
type Config struct {
	// Press is applied in order before the first frame.
	Press []engine.Button
	// Sound plays a short click on every press.
	Sound bool
	// Verbose logs every press with the resulting state.
	Verbose bool
}

// New initializes the calculator with default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig initializes the calculator and returns the step function the
// host loop calls once per frame.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return newCalculator(h, cfg).step
}

// Run starts the calculator and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{Sound: true})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	t := time.NewTicker(time.Second / 60)
	defer t.Stop()
	for range t.C {
		if err := step(); err != nil && !errors.Is(err, hal.ErrExit) {
			logf(h.Logger(), "calc: %v", err)
		}
	}
}

type calculator struct {
	log   hal.Logger
	kbd   hal.Keyboard
	ptr   hal.Pointer
	ticks <-chan uint64

	r     *ui.Renderer
	grid  keypad.Grid
	click *clicker

	state engine.State
	cfg   Config

	now          uint64
	focus        int
	showFocus    bool
	pressed      int
	pressedUntil uint64
	failed       bool
	dirty        bool
}

func newCalculator(h hal.HAL, cfg Config) *calculator {
	c := &calculator{
		log:     h.Logger(),
		state:   engine.New(),
		cfg:     cfg,
		pressed: -1,
		dirty:   true,
	}

	if in := h.Input(); in != nil {
		c.kbd = in.Keyboard()
		c.ptr = in.Pointer()
	}
	if t := h.Time(); t != nil {
		c.ticks = t.Ticks()
	}

	w, ht := 320, 320
	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			r, err := ui.NewRenderer(fb)
			if err != nil {
				logf(c.log, "calc: %v", err)
			} else {
				c.r = r
			}
			w, ht = fb.Width(), fb.Height()
		}
	}
	if c.r != nil {
		c.grid = c.r.Grid()
	} else {
		c.grid = keypad.Layout(w, ht)
	}
	c.focus = max(0, c.grid.Index(engine.Digit5))

	if cfg.Sound {
		if a := h.Audio(); a != nil {
			c.click = newClicker(a.PWM(), c.log)
		}
	}

	logf(c.log, "calc: start build=%s screen=%dx%d", buildinfo.Short(), w, ht)

	for _, b := range cfg.Press {
		c.apply(b)
	}
	c.redraw()
	return c
}

// step drains pending input without blocking and redraws when needed.
func (c *calculator) step() (err error) {
	defer c.recoverStep(&err)

	c.drainTicks()

	if c.kbd != nil {
	keys:
		for {
			select {
			case ev, ok := <-c.kbd.Events():
				if !ok {
					c.kbd = nil
					break keys
				}
				if ev.Press {
					if err := c.handleKey(ev.Code); err != nil {
						return err
					}
				}
			default:
				break keys
			}
		}
	}

	if c.ptr != nil {
	taps:
		for {
			select {
			case ev, ok := <-c.ptr.Events():
				if !ok {
					c.ptr = nil
					break taps
				}
				c.handleTap(ev.X, ev.Y)
			default:
				break taps
			}
		}
	}

	if c.pressed >= 0 && c.now >= c.pressedUntil {
		c.pressed = -1
		c.dirty = true
	}

	c.redraw()
	return nil
}

func (c *calculator) drainTicks() {
	if c.ticks == nil {
		return
	}
	for {
		select {
		case seq, ok := <-c.ticks:
			if !ok {
				c.ticks = nil
				return
			}
			c.now = seq
		default:
			return
		}
	}
}

func (c *calculator) handleKey(code hal.KeyCode) error {
	switch code {
	case hal.KeyUp:
		c.moveFocus(keypad.Up)
	case hal.KeyDown:
		c.moveFocus(keypad.Down)
	case hal.KeyLeft:
		c.moveFocus(keypad.Left)
	case hal.KeyRight:
		c.moveFocus(keypad.Right)
	case hal.KeyEnter:
		if c.focus >= 0 && c.focus < len(c.grid.Keys) {
			c.press(c.focus)
		}
	case hal.KeyEscape:
		return hal.ErrExit
	}
	return nil
}

func (c *calculator) moveFocus(dir keypad.Direction) {
	if c.showFocus {
		c.focus = c.grid.Move(c.focus, dir)
	}
	c.showFocus = true
	c.dirty = true
}

func (c *calculator) handleTap(x, y int) {
	k, ok := c.grid.Hit(x, y)
	if !ok {
		return
	}
	i := c.grid.Index(k.Button)
	c.focus = i
	c.press(i)
}

// press applies the key at index i with feedback.
func (c *calculator) press(i int) {
	c.apply(c.grid.Keys[i].Button)
	c.pressed = i
	c.pressedUntil = c.now + flashTicks
	if c.click != nil {
		c.click.play()
	}
}

func (c *calculator) apply(b engine.Button) {
	c.state = engine.Apply(c.state, b)
	c.failed = false
	c.dirty = true
	if c.cfg.Verbose {
		logf(c.log, "calc: press %s %s", b, c.state)
	}
}

func (c *calculator) redraw() {
	if !c.dirty || c.r == nil {
		return
	}
	c.dirty = false

	f := ui.Frame{Display: c.state.Display, Focus: -1, Pressed: c.pressed}
	if c.showFocus {
		f.Focus = c.focus
	}
	if c.failed {
		f.Display = "Error"
	}
	if err := c.r.Draw(f); err != nil && !errors.Is(err, hal.ErrNotImplemented) {
		logf(c.log, "calc: present: %v", err)
	}
}

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
