//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// speakerPin drives the PicoCalc speaker amplifier.
const speakerPin = machine.GP2

// pwmCarrierHz is far above hearing so only the duty-cycle envelope is audible.
const pwmCarrierHz = 62500

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	SetTop(top uint32)
	Top() uint32
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

// tinyGoAudio plays samples by setting the PWM duty cycle once per sample.
type tinyGoAudio struct {
	spk *pwmSpeaker
}

func newTinyGoAudio() Audio {
	return &tinyGoAudio{spk: newPWMSpeaker(speakerPin)}
}

func (a *tinyGoAudio) PWM() PWMAudio {
	if a.spk == nil {
		return nil
	}
	return a.spk
}

type pwmSpeaker struct {
	pin machine.Pin
	dev pwmDevice
	ch  uint8
	top uint32

	volume  uint8
	running bool

	period time.Duration
	next   time.Time
}

func newPWMSpeaker(pin machine.Pin) *pwmSpeaker {
	dev := pwmSlice(pin)
	if dev == nil {
		return nil
	}
	return &pwmSpeaker{pin: pin, dev: dev, volume: 0xFF}
}

// pwmSlice returns the RP2040 PWM slice wired to pin.
func pwmSlice(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	slices := [...]pwmDevice{
		machine.PWM0, machine.PWM1, machine.PWM2, machine.PWM3,
		machine.PWM4, machine.PWM5, machine.PWM6, machine.PWM7,
	}
	if int(slice) >= len(slices) {
		return nil
	}
	return slices[slice]
}

func (s *pwmSpeaker) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return ErrNotImplemented
	}
	if err := s.dev.Configure(machine.PWMConfig{Period: 1e9 / pwmCarrierHz}); err != nil {
		return err
	}
	ch, err := s.dev.Channel(s.pin)
	if err != nil {
		return err
	}
	s.ch = ch
	s.dev.SetTop(0xFFFF)
	s.top = s.dev.Top()
	s.rest()
	s.dev.Enable(true)

	s.period = time.Second / time.Duration(sampleRate)
	s.next = time.Now()
	s.running = true
	return nil
}

func (s *pwmSpeaker) Stop() error {
	if !s.running {
		return nil
	}
	s.rest()
	s.dev.Enable(false)
	s.running = false
	return nil
}

func (s *pwmSpeaker) SetVolume(vol uint8) { s.volume = vol }

// WriteSample holds each sample for one sample period, so n samples take
// n/rate seconds of the caller's time.
func (s *pwmSpeaker) WriteSample(sample int16) {
	if !s.running {
		return
	}
	for time.Now().Before(s.next) {
	}
	s.next = s.next.Add(s.period)
	if now := time.Now(); s.next.Before(now) {
		s.next = now
	}

	v := int32(sample) * int32(s.volume) / 255
	s.dev.Set(s.ch, uint32(v+32768)*s.top/0xFFFF)
}

func (s *pwmSpeaker) rest() { s.dev.Set(s.ch, s.top/2) }
