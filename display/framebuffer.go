package display

import (
	"image/color"

	"ledtris/hal"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*FramebufferDisplay)(nil)

// FramebufferDisplay adapts an RGB565 hal.Framebuffer to drivers.Displayer.
type FramebufferDisplay struct {
	fb hal.Framebuffer
}

func NewFramebufferDisplay(fb hal.Framebuffer) *FramebufferDisplay {
	return &FramebufferDisplay{fb: fb}
}

func (d *FramebufferDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *FramebufferDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *FramebufferDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

// FillRectangle paints a w×h block clipped to the framebuffer.
func (d *FramebufferDisplay) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil || w <= 0 || h <= 0 {
		return nil
	}
	fw, fh := d.fb.Width(), d.fb.Height()
	x0, y0 := max(int(x), 0), max(int(y), 0)
	x1, y1 := min(int(x)+int(w), fw), min(int(y)+int(h), fh)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	stride := d.fb.StrideBytes()
	for yy := y0; yy < y1; yy++ {
		row := yy * stride
		for xx := x0; xx < x1; xx++ {
			off := row + xx*2
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}
