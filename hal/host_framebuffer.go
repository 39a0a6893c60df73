//go:build !tinygo

package hal

import "sync"

type hostFramebuffer struct {
	rgb565Buffer

	mu       sync.Mutex
	presents int
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{rgb565Buffer: newRGB565Buffer(width, height)}
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fill(r, g, b)
}

// Present counts frames; the window copies pixels on its own schedule.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.presents++
	f.mu.Unlock()
	return nil
}

// toRGBA converts the framebuffer into dst, which must hold width*height*4 bytes.
func (f *hostFramebuffer) toRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	src := f.buf
	for i, j := 0, 0; i+1 < len(src) && j+3 < len(dst); i, j = i+2, j+4 {
		dst[j], dst[j+1], dst[j+2] = RGB888(uint16(src[i]) | uint16(src[i+1])<<8)
		dst[j+3] = 0xFF
	}
}
