package hal

// rgb565Buffer is a little-endian RGB565 pixel store shared by the host and
// device framebuffers.
type rgb565Buffer struct {
	width  int
	height int
	stride int
	buf    []byte
}

func newRGB565Buffer(width, height int) rgb565Buffer {
	return rgb565Buffer{
		width:  width,
		height: height,
		stride: width * 2,
		buf:    make([]byte, width*height*2),
	}
}

func (b *rgb565Buffer) Width() int          { return b.width }
func (b *rgb565Buffer) Height() int         { return b.height }
func (b *rgb565Buffer) Format() PixelFormat { return PixelFormatRGB565 }
func (b *rgb565Buffer) StrideBytes() int    { return b.stride }
func (b *rgb565Buffer) Buffer() []byte      { return b.buf }

func (b *rgb565Buffer) fill(r, g, bl uint8) {
	pixel := RGB565(r, g, bl)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(b.buf); i += 2 {
		b.buf[i] = lo
		b.buf[i+1] = hi
	}
}
