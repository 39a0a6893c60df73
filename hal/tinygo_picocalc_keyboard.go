//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

// Key codes reported by the PicoCalc keyboard MCU.
const (
	picoCalcKeyEsc   byte = 0xB1
	picoCalcKeyLeft  byte = 0xB4
	picoCalcKeyUp    byte = 0xB5
	picoCalcKeyDown  byte = 0xB6
	picoCalcKeyRight byte = 0xB7
)

var errNoKeyboard = errors.New("keyboard: I2C unavailable")

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{picoCalcKbdCmd}

	// Prefer I2C1 (stock PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		if err := bus.Configure(machine.I2CConfig{
			SCL:       machine.GP7,
			SDA:       machine.GP6,
			Frequency: 100_000,
		}); err != nil {
			continue
		}

		k := &i2cKeyboard{i2c: bus, write: write}

		// The keyboard MCU can be slow to respond on boot.
		for i := 0; i < 50; i++ {
			if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
				return k, nil
			}
			time.Sleep(10 * time.Millisecond)
		}
	}

	return nil, errNoKeyboard
}

// readEvent polls one FIFO entry. Only navigation keys are reported.
func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}

	var press bool
	switch k.read[0] {
	case 0x01: // key down
		press = true
	case 0x03: // key up
	default: // held or empty
		return KeyEvent{}, false
	}

	code := mapPicoCalcKey(k.read[1])
	if code == KeyUnknown {
		return KeyEvent{}, false
	}
	return KeyEvent{Code: code, Press: press}, true
}

func mapPicoCalcKey(code byte) KeyCode {
	switch code {
	case picoCalcKeyUp:
		return KeyUp
	case picoCalcKeyDown:
		return KeyDown
	case picoCalcKeyLeft:
		return KeyLeft
	case picoCalcKeyRight:
		return KeyRight
	case '\r', '\n', ' ':
		return KeyEnter
	case picoCalcKeyEsc:
		return KeyEscape
	default:
		return KeyUnknown
	}
}
