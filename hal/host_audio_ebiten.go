//go:build !tinygo && cgo

package hal

import (
	"errors"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hostAudio plays the key click on desktop through Ebiten's audio package.
type hostAudio struct {
	pwm *hostPWMAudio
}

func newHostAudio() hostAudio {
	return hostAudio{pwm: &hostPWMAudio{vol: 0xFF}}
}

func (a hostAudio) PWM() PWMAudio { return a.pwm }

// hostPWMAudio queues mono samples for an always-playing ebiten player.
//
// WriteSample never blocks because clicks are written from the game loop.
// Samples past maxQueue are dropped and the player reads silence when the
// queue is empty.
type hostPWMAudio struct {
	mu sync.Mutex

	ctx    *audio.Context
	player *audio.Player

	queue    []int16
	maxQueue int
	vol      uint8
}

func (a *hostPWMAudio) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return errors.New("host audio: invalid sample rate")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		// Ebiten allows one context per process.
		a.ctx = audio.CurrentContext()
		if a.ctx == nil {
			a.ctx = audio.NewContext(int(sampleRate))
		}
	}
	if a.ctx.SampleRate() != int(sampleRate) {
		return errors.New("host audio: ebiten audio context sample rate is fixed")
	}
	if a.player != nil {
		return nil
	}

	a.maxQueue = int(sampleRate / 4)
	a.queue = a.queue[:0]

	p, err := a.ctx.NewPlayer(&hostAudioReader{a: a})
	if err != nil {
		return err
	}
	p.SetBufferSize(50 * time.Millisecond)
	p.SetVolume(float64(a.vol) / 255.0)
	p.Play()
	a.player = p
	return nil
}

func (a *hostPWMAudio) Stop() error {
	a.mu.Lock()
	p := a.player
	a.player = nil
	a.queue = a.queue[:0]
	a.mu.Unlock()

	if p == nil {
		return nil
	}
	return p.Close()
}

func (a *hostPWMAudio) SetVolume(vol uint8) {
	a.mu.Lock()
	a.vol = vol
	p := a.player
	a.mu.Unlock()

	if p != nil {
		p.SetVolume(float64(vol) / 255.0)
	}
}

func (a *hostPWMAudio) WriteSample(sample int16) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.player == nil || len(a.queue) >= a.maxQueue {
		return
	}
	a.queue = append(a.queue, sample)
}

// take moves up to n queued samples into dst and pads the rest with silence.
func (a *hostPWMAudio) take(dst []int16) {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := copy(dst, a.queue)
	a.queue = a.queue[:copy(a.queue, a.queue[n:])]
	clear(dst[n:])
}

type hostAudioReader struct {
	a   *hostPWMAudio
	tmp []int16
}

// Read produces 16-bit little-endian stereo frames, as ebiten expects.
func (r *hostAudioReader) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if cap(r.tmp) < frames {
		r.tmp = make([]int16, frames)
	}
	samples := r.tmp[:frames]
	r.a.take(samples)

	for i, s := range samples {
		j := i * 4
		p[j+0] = byte(s)
		p[j+1] = byte(s >> 8)
		p[j+2] = byte(s)
		p[j+3] = byte(s >> 8)
	}
	return frames * 4, nil
}
