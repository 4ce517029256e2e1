package app

import (
	"errors"
	"fmt"
	"time"

	"ledtris/display"
	"ledtris/hal"
	"ledtris/internal/buildinfo"
)

// ErrQuit is returned by the step func after the player asks to quit.
var ErrQuit = errors.New("quit")

// frameInterval paces Run on the device; hosts call the step func themselves.
const frameInterval = 20 * time.Millisecond

type system struct {
	h     hal.HAL
	s     *Session
	sink  *display.Sink
	keys  <-chan hal.KeyEvent
	ticks <-chan uint64
	now   uint64
}

// New starts a game on h with the default config and returns its per-frame step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig starts a game on h and returns its per-frame step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	sys, err := newSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return sys.guardedStep
}

// Run starts the game and steps it forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	for range t.C {
		if err := step(); err != nil {
			h.Logger().WriteLineString("ledtris: " + err.Error())
			select {}
		}
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("ledtris: no framebuffer: %w", hal.ErrNotImplemented)
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("ledtris: unsupported pixel format %d", fb.Format())
	}

	sys := &system{
		h:    h,
		s:    NewSession(cfg, h.Logger(), h.LED()),
		sink: display.NewSink(fb),
	}
	if in := h.Input(); in != nil && in.Keyboard() != nil {
		sys.keys = in.Keyboard().Events()
	}
	if t := h.Time(); t != nil {
		sys.ticks = t.Ticks()
	}

	h.Logger().WriteLineString(fmt.Sprintf("ledtris %s: %dx%d grid, seed=%d, tick=%dms, gravity every %d ticks",
		buildinfo.Short(), fb.Width(), fb.Height(), cfg.Seed, sys.s.cfg.TickMillis, sys.s.cfg.GravityTicks))
	return sys, nil
}

// guardedStep turns a panic in the step into an error and paints the
// framebuffer red so the failure is visible on the matrix.
func (sys *system) guardedStep() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ledtris: panic: %v", r)
			if fb := sys.h.Display().Framebuffer(); fb != nil {
				fb.ClearRGB(0xFF, 0, 0)
				_ = fb.Present()
			}
		}
	}()
	return sys.step()
}

func (sys *system) step() error {
	sys.drainInput()
	sys.drainTime()
	if sys.s.QuitRequested() {
		return ErrQuit
	}
	sys.s.Advance(sys.now)
	return sys.sink.Draw(sys.s.Game(), sys.s.Status())
}

func (sys *system) drainInput() {
	for {
		select {
		case ev, ok := <-sys.keys:
			if !ok {
				sys.keys = nil
				return
			}
			sys.s.Do(ActionForKey(ev))
		default:
			return
		}
	}
}

// drainTime keeps only the newest tick; intermediate ticks carry no data.
func (sys *system) drainTime() {
	for {
		select {
		case seq, ok := <-sys.ticks:
			if !ok {
				sys.ticks = nil
				return
			}
			if seq > sys.now {
				sys.now = seq
			}
		default:
			return
		}
	}
}
