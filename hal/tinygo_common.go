//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

// Pointer is nil: the PicoCalc panel has no touch layer.
func (in tinyGoInput) Pointer() Pointer { return nil }

// tinyGoTime publishes a millisecond counter. Slow consumers miss ticks but
// always read the latest sequence number.
type tinyGoTime struct {
	ch chan uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go t.run()
	return t
}

func (t *tinyGoTime) run() {
	start := time.Now()
	for {
		time.Sleep(time.Millisecond)
		seq := uint64(time.Since(start) / time.Millisecond)
		select {
		case t.ch <- seq:
		default:
		}
	}
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

var crlf = []byte{'\r', '\n'}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	l.WriteLineBytes([]byte(s))
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	_, _ = l.uart.Write(b)
	_, _ = l.uart.Write(crlf)
}

type stubKeyboard struct{}

func (stubKeyboard) Events() <-chan KeyEvent { return nil }
