//go:build !tinygo

package hal

import (
	"os"
	"sync"
)

// Host framebuffer size: a 16px cell grid plus a status strip.
const (
	hostWidth  = 160
	hostHeight = 288
)

type hostHAL struct {
	logger Logger
	led    *hostLED
	fb     *MemFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation.
func New() HAL {
	logger := NewLogger(os.Stdout)
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		fb:     NewMemFramebuffer(hostWidth, hostHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *MemFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger Logger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		return
	}
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		return
	}
	l.on = false
	l.logger.WriteLineString("led: LOW")
}
