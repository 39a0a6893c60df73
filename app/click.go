package app

import (
	"calc/hal"
)

const (
	clickRate  = 22050
	clickHz    = 2000
	clickMs    = 4
	clickLevel = 6000
)

// clicker plays a short square-wave tick on key presses.
type clicker struct {
	pwm     hal.PWMAudio
	log     hal.Logger
	started bool
	off     bool
	wave    []int16
}

func newClicker(pwm hal.PWMAudio, log hal.Logger) *clicker {
	if pwm == nil {
		return nil
	}
	n := clickRate * clickMs / 1000
	half := clickRate / clickHz / 2
	wave := make([]int16, n)
	for i := range wave {
		if (i/half)%2 == 0 {
			wave[i] = clickLevel
		} else {
			wave[i] = -clickLevel
		}
	}
	return &clicker{pwm: pwm, log: log, wave: wave}
}

func (k *clicker) play() {
	if k.off {
		return
	}
	if !k.started {
		if err := k.pwm.Start(clickRate); err != nil {
			logf(k.log, "calc: sound disabled: %v", err)
			k.off = true
			return
		}
		k.pwm.SetVolume(0xC0)
		k.started = true
	}
	for _, s := range k.wave {
		k.pwm.WriteSample(s)
	}
	// Return the line to rest so the PWM output does not hold the last level.
	k.pwm.WriteSample(0)
}
