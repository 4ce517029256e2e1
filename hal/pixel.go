package hal

// RGB565 packs an 8-bit-per-channel color.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888 expands an RGB565 pixel.
func RGB888(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// PixelAt reads the RGB565 pixel at (x, y) of a little-endian buffer.
func PixelAt(fb Framebuffer, x, y int) uint16 {
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*2
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() || off+1 >= len(buf) {
		return 0
	}
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}

// fillRGB565 sets every pixel of buf.
func fillRGB565(buf []byte, pixel uint16) {
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

// MemFramebuffer is an RGB565 framebuffer held in memory. Present is a no-op
// unless OnPresent is set.
type MemFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	OnPresent func(fb *MemFramebuffer) error
}

// NewMemFramebuffer allocates a w×h buffer.
func NewMemFramebuffer(w, h int) *MemFramebuffer {
	return &MemFramebuffer{w: w, h: h, stride: w * 2, buf: make([]byte, w*h*2)}
}

func (f *MemFramebuffer) Width() int          { return f.w }
func (f *MemFramebuffer) Height() int         { return f.h }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB565(f.buf, RGB565(r, g, b))
}

func (f *MemFramebuffer) Present() error {
	if f.OnPresent == nil {
		return nil
	}
	return f.OnPresent(f)
}
