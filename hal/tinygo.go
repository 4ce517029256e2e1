//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ws2812"
)

// Matrix geometry: 8 columns by 16 rows, wired row by row from the top left.
const (
	matrixWidth  = 8
	matrixHeight = 16

	// Serpentine wiring reverses every odd row.
	matrixSerpentine = true

	buttonPoll = 5 * time.Millisecond
)

// Pin assignment (Pico): matrix data on GP2, buttons to ground on GP3..GP8.
var (
	matrixPin  = machine.GP2
	buttonPins = []struct {
		pin  machine.Pin
		code KeyCode
		r    rune
	}{
		{machine.GP3, KeyLeft, 0},
		{machine.GP4, KeyRight, 0},
		{machine.GP5, KeyUp, 0},
		{machine.GP6, KeyDown, 0},
		{machine.GP7, KeyUnknown, 'z'},
		{machine.GP8, KeyEnter, 0},
	}
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	fb     *MemFramebuffer
	kbd    *buttonKeyboard
	t      *tinyGoTime
}

// New returns the LED-matrix board HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	matrixPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	strip := ws2812.New(matrixPin)

	fb := NewMemFramebuffer(matrixWidth, matrixHeight)
	out := make([]color.RGBA, matrixWidth*matrixHeight)
	fb.OnPresent = func(f *MemFramebuffer) error {
		for y := 0; y < matrixHeight; y++ {
			for x := 0; x < matrixWidth; x++ {
				r, g, b := RGB888(PixelAt(f, x, y))
				out[ledIndex(x, y)] = color.RGBA{R: r, G: g, B: b, A: 0xFF}
			}
		}
		return strip.WriteColors(out)
	}

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    &pinLED{pin: ledPin},
		fb:     fb,
		kbd:    newButtonKeyboard(),
		t:      newTinyGoTime(),
	}
}

func ledIndex(x, y int) int {
	if matrixSerpentine && y%2 == 1 {
		x = matrixWidth - 1 - x
	}
	return y*matrixWidth + x
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Time() Time       { return h.t }

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

// buttonKeyboard polls active-low buttons and emits press/release edges.
type buttonKeyboard struct {
	ch   chan KeyEvent
	down []bool
}

func newButtonKeyboard() *buttonKeyboard {
	k := &buttonKeyboard{
		ch:   make(chan KeyEvent, 16),
		down: make([]bool, len(buttonPins)),
	}
	for _, b := range buttonPins {
		b.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	go k.run()
	return k
}

func (k *buttonKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *buttonKeyboard) run() {
	for {
		for i, b := range buttonPins {
			pressed := !b.pin.Get()
			if pressed == k.down[i] {
				continue
			}
			k.down[i] = pressed
			select {
			case k.ch <- KeyEvent{Code: b.code, Press: pressed, Rune: b.r}:
			default:
			}
		}
		time.Sleep(buttonPoll)
	}
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }
