//go:build tinygo && baremetal && picocalc

package hal

import (
	"machine"
	"time"
)

type picoCalcHAL struct {
	logger *uartLogger
	fb     Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
	audio  Audio
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	disp, err := newPicoCalcDisplay()
	if err != nil {
		logger.WriteLineString("hal: lcd: " + err.Error())
		disp = newPicoCalcDisplayStub()
	}

	var kbd Keyboard
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("hal: " + err.Error())
		kbd = stubKeyboard{}
	}

	return &picoCalcHAL{
		logger: logger,
		fb:     disp,
		kbd:    kbd,
		t:      newTinyGoTime(),
		audio:  newTinyGoAudio(),
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *picoCalcHAL) Time() Time       { return h.t }
func (h *picoCalcHAL) Audio() Audio     { return h.audio }

const picoCalcSize = 320

// picoCalcFramebuffer keeps a full frame in RAM and pushes it to the LCD on
// Present.
type picoCalcFramebuffer struct {
	rgb565Buffer
	lcd *ili9488
}

func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) { f.fill(r, g, b) }

func (f *picoCalcFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	return f.lcd.blitRGB565LittleEndian(f.buf, f.width, f.height)
}

func newPicoCalcDisplay() (*picoCalcFramebuffer, error) {
	lcd, err := initILI9488()
	if err != nil {
		return nil, err
	}
	return &picoCalcFramebuffer{rgb565Buffer: newRGB565Buffer(picoCalcSize, picoCalcSize), lcd: lcd}, nil
}

// newPicoCalcDisplayStub keeps the app running headless when the LCD fails.
func newPicoCalcDisplayStub() *picoCalcFramebuffer {
	return &picoCalcFramebuffer{rgb565Buffer: newRGB565Buffer(picoCalcSize, picoCalcSize)}
}

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 16)}
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			if ev, ok := kbd.readEvent(); ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()

	return dev, nil
}
