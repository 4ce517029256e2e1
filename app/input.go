package app

import (
	"ledtris/game"
	"ledtris/hal"
)

// Action is a player intent produced by an input source.
type Action uint8

const (
	ActionNone Action = iota
	ActionRotateCCW
	ActionRotateCW
	ActionLeft
	ActionRight
	ActionDrop
	ActionReset
	ActionPause
	ActionQuit
)

var actionCommands = map[Action]game.Command{
	ActionRotateCCW: game.RotateCCW,
	ActionRotateCW:  game.RotateCW,
	ActionLeft:      game.MoveLeft,
	ActionRight:     game.MoveRight,
	ActionDrop:      game.SoftDrop,
}

// ActionForRune maps text keys shared by every keyboard host.
func ActionForRune(r rune) Action {
	switch r {
	case 'z', 'Z':
		return ActionRotateCCW
	case 'x', 'X':
		return ActionRotateCW
	case 'h':
		return ActionLeft
	case 'l':
		return ActionRight
	case 'j', ' ':
		return ActionDrop
	case 'r', 'R':
		return ActionReset
	case 'p', 'P':
		return ActionPause
	case 'q':
		return ActionQuit
	default:
		return ActionNone
	}
}

// ActionForKey maps a hal key event. Releases are ignored.
func ActionForKey(ev hal.KeyEvent) Action {
	if !ev.Press {
		return ActionNone
	}
	switch ev.Code {
	case hal.KeyUp:
		return ActionRotateCW
	case hal.KeyDown:
		return ActionDrop
	case hal.KeyLeft:
		return ActionLeft
	case hal.KeyRight:
		return ActionRight
	case hal.KeyEnter:
		return ActionReset
	case hal.KeyEscape:
		return ActionQuit
	}
	if ev.Rune != 0 {
		return ActionForRune(ev.Rune)
	}
	return ActionNone
}
