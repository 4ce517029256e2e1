// Package display is the display sink: it draws playground snapshots onto a
// framebuffer, one LED per cell on the matrix or scaled cells on the host.
package display

import (
	"image/color"

	"ledtris/game"
	"ledtris/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG     = color.RGBA{A: 0xFF}
	colorBorder = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
	colorBlink  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorText   = color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
)

var palette = [game.ColorCount + 1]color.RGBA{
	game.Empty:   colorBG,
	game.Red:     {R: 0xFF, A: 0xFF},
	game.Green:   {G: 0xFF, A: 0xFF},
	game.Blue:    {B: 0xFF, A: 0xFF},
	game.Yellow:  {R: 0xFF, G: 0xFF, A: 0xFF},
	game.Fuchsia: {R: 0xFF, B: 0xFF, A: 0xFF},
	game.Aqua:    {G: 0xFF, B: 0xFF, A: 0xFF},
}

// CellColor maps a cell to its LED color. Blink cells alternate between
// white and off with blinkOn.
func CellColor(c game.Cell, blinkOn bool) color.RGBA {
	if c == game.Blink {
		if blinkOn {
			return colorBlink
		}
		return colorBG
	}
	if int(c) < len(palette) {
		return palette[c]
	}
	return colorBG
}

// Layout places the playground on a framebuffer.
type Layout struct {
	Left, Top int
	Cell      int
	// Border draws a one pixel frame around the playground.
	Border bool
	// StatusY is the baseline row for the status strip, or -1 when there is
	// no room for text.
	StatusY int
}

const statusHeight = 12

// LayoutFor fits the playground into a w×h framebuffer. An exact Width×Height
// buffer (the LED matrix) maps one pixel per cell with no border or status.
func LayoutFor(w, h int) Layout {
	if w == game.Width && h == game.Height {
		return Layout{Cell: 1, StatusY: -1}
	}
	avail := h - statusHeight - 2
	cell := min((w-2)/game.Width, avail/game.Height)
	if cell < 1 {
		return Layout{Cell: 1, StatusY: -1}
	}
	boardW := cell * game.Width
	boardH := cell * game.Height
	return Layout{
		Left:    (w - boardW) / 2,
		Top:     1,
		Cell:    cell,
		Border:  true,
		StatusY: boardH + 2 + statusHeight - 2,
	}
}

// Sink renders snapshots to a framebuffer and presents them.
type Sink struct {
	fb     hal.Framebuffer
	d      *FramebufferDisplay
	layout Layout
	snap   game.Grid

	// BlinkFrames is the number of frames per blink half-period.
	BlinkFrames int
	frame       int
}

func NewSink(fb hal.Framebuffer) *Sink {
	return &Sink{
		fb:          fb,
		d:           NewFramebufferDisplay(fb),
		layout:      LayoutFor(fb.Width(), fb.Height()),
		BlinkFrames: 15,
	}
}

// Layout returns the placement computed for the framebuffer.
func (s *Sink) Layout() Layout { return s.layout }

// BlinkOn reports the blink phase of the next frame.
func (s *Sink) BlinkOn() bool {
	if s.BlinkFrames <= 0 {
		return true
	}
	return (s.frame/s.BlinkFrames)%2 == 0
}

// Draw snapshots g, renders it with an optional status line, and presents.
func (s *Sink) Draw(g *game.Game, status string) error {
	g.Snapshot(&s.snap)
	blinkOn := s.BlinkOn()
	s.frame++

	s.fb.ClearRGB(0, 0, 0)
	Render(s.d, &s.snap, s.layout, blinkOn)
	if status != "" && s.layout.StatusY >= 0 {
		DrawStatus(s.d, int16(s.layout.Left), int16(s.layout.StatusY), status)
	}
	return s.d.Display()
}

// Render paints every playground cell.
func Render(d *FramebufferDisplay, grid *game.Grid, l Layout, blinkOn bool) {
	cell := int16(l.Cell)
	if l.Border {
		w := cell*game.Width + 2
		h := cell*game.Height + 2
		x0, y0 := int16(l.Left-1), int16(l.Top-1)
		_ = d.FillRectangle(x0, y0, w, 1, colorBorder)
		_ = d.FillRectangle(x0, y0+h-1, w, 1, colorBorder)
		_ = d.FillRectangle(x0, y0, 1, h, colorBorder)
		_ = d.FillRectangle(x0+w-1, y0, 1, h, colorBorder)
	}
	for x := 0; x < game.Width; x++ {
		for y := 0; y < game.Height; y++ {
			c := CellColor(grid[x][y], blinkOn)
			px := int16(l.Left + x*l.Cell)
			py := int16(l.Top + y*l.Cell)
			if cell == 1 {
				d.SetPixel(px, py, c)
				continue
			}
			// Leave a one pixel gap so neighbouring LEDs stay distinct.
			_ = d.FillRectangle(px, py, cell-1, cell-1, c)
		}
	}
}

// DrawStatus writes one line of text with its baseline at y.
func DrawStatus(d *FramebufferDisplay, x, y int16, s string) {
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, x, y, s, colorText)
}
