// Package tui plays the game in a terminal with tcell. Each playground cell
// is drawn two columns wide so the board keeps its aspect ratio.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"ledtris/app"
	"ledtris/display"
	"ledtris/game"
	"ledtris/hal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdout is not a terminal.
var ErrNotTerminal = errors.New("tui: stdout is not a terminal")

const (
	frameInterval = 16 * time.Millisecond
	blinkFrames   = 15
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
)

// Run plays until the player quits or ctx is done.
func Run(ctx context.Context, cfg app.Config, log hal.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	defer screen.Fini()
	return run(ctx, screen, app.NewSession(cfg, log, nil))
}

func run(ctx context.Context, screen tcell.Screen, s *app.Session) error {
	screen.HideCursor()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t := time.NewTicker(frameInterval)
	defer t.Stop()
	start := time.Now()
	v := &view{screen: screen}

	s.Advance(0)
	v.draw(s)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				s.Do(actionForKey(ev))
				if s.QuitRequested() {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			s.Advance(uint64(time.Since(start).Milliseconds()))
			v.draw(s)
		}
	}
}

func actionForKey(ev *tcell.EventKey) app.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return app.ActionRotateCW
	case tcell.KeyDown:
		return app.ActionDrop
	case tcell.KeyLeft:
		return app.ActionLeft
	case tcell.KeyRight:
		return app.ActionRight
	case tcell.KeyEnter:
		return app.ActionReset
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.ActionQuit
	case tcell.KeyRune:
		return app.ActionForRune(ev.Rune())
	}
	return app.ActionNone
}

type view struct {
	screen tcell.Screen
	snap   game.Grid
	frame  int
}

func cellStyle(c game.Cell, blinkOn bool) (rune, tcell.Style) {
	if c == game.Empty || (c == game.Blink && !blinkOn) {
		return '·', styleEmpty
	}
	rgb := display.CellColor(c, blinkOn)
	return '█', tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B)))
}

func (v *view) draw(s *app.Session) {
	s.Game().Snapshot(&v.snap)
	blinkOn := (v.frame/blinkFrames)%2 == 0
	v.frame++

	scr := v.screen
	scr.Clear()
	w := game.Width*2 + 2
	h := game.Height + 2
	for x := 1; x < w-1; x++ {
		scr.SetContent(x, 0, '─', nil, styleBorder)
		scr.SetContent(x, h-1, '─', nil, styleBorder)
	}
	for y := 1; y < h-1; y++ {
		scr.SetContent(0, y, '│', nil, styleBorder)
		scr.SetContent(w-1, y, '│', nil, styleBorder)
	}
	scr.SetContent(0, 0, '┌', nil, styleBorder)
	scr.SetContent(w-1, 0, '┐', nil, styleBorder)
	scr.SetContent(0, h-1, '└', nil, styleBorder)
	scr.SetContent(w-1, h-1, '┘', nil, styleBorder)

	for x := 0; x < game.Width; x++ {
		for y := 0; y < game.Height; y++ {
			r, st := cellStyle(v.snap[x][y], blinkOn)
			scr.SetContent(1+x*2, 1+y, r, nil, st)
			scr.SetContent(2+x*2, 1+y, r, nil, st)
		}
	}

	for i, r := range []rune(s.Status()) {
		scr.SetContent(i, h, r, nil, styleStatus)
	}
	scr.Show()
}
