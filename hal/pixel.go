package hal

import (
	"errors"
	"image"
	"image/color"
)

// RGB565 packs an 8-bit-per-channel color.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888 expands a packed RGB565 pixel.
func RGB888(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// Snapshot copies a little-endian RGB565 framebuffer into an RGBA image.
func Snapshot(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil {
		return nil, errors.New("snapshot: no framebuffer")
	}
	if fb.Format() != PixelFormatRGB565 {
		return nil, errors.New("snapshot: unsupported pixel format")
	}
	buf := fb.Buffer()
	w, h, stride := fb.Width(), fb.Height(), fb.StrideBytes()
	if buf == nil || len(buf) < stride*h {
		return nil, errors.New("snapshot: framebuffer not readable")
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := buf[y*stride:]
		for x := 0; x < w; x++ {
			r, g, b := RGB888(uint16(row[x*2]) | uint16(row[x*2+1])<<8)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img, nil
}
