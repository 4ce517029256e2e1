package game

import "sync/atomic"

// Command is one flag of the command register.
type Command uint8

const (
	ResetTrigger Command = iota
	LossFlag
	RotateCCW
	RotateCW
	MoveLeft
	MoveRight
	SoftDrop
	GravityTick

	commandCount
)

var commandNames = [commandCount]string{
	ResetTrigger: "reset",
	LossFlag:     "loss",
	RotateCCW:    "rot-ccw",
	RotateCW:     "rot-cw",
	MoveLeft:     "left",
	MoveRight:    "right",
	SoftDrop:     "soft-drop",
	GravityTick:  "gravity",
}

func (c Command) String() string {
	if c >= commandCount {
		return "unknown"
	}
	return commandNames[c]
}

// Register holds the pending one-shot commands consumed by Tick.
//
// Set may be called from an input goroutine while Tick runs; the zero value
// is an empty register.
type Register struct {
	bits [commandCount]atomic.Bool
}

// Set raises c. Raising an already raised flag is a no-op. Unknown commands
// are ignored.
func (r *Register) Set(c Command) {
	if c >= commandCount {
		return
	}
	r.bits[c].Store(true)
}

// Has reports whether c is raised.
func (r *Register) Has(c Command) bool {
	if c >= commandCount {
		return false
	}
	return r.bits[c].Load()
}

// Take clears c and reports whether it was raised.
func (r *Register) Take(c Command) bool {
	if c >= commandCount {
		return false
	}
	return r.bits[c].Swap(false)
}

// Clear lowers c.
func (r *Register) Clear(c Command) {
	if c >= commandCount {
		return
	}
	r.bits[c].Store(false)
}

// Reset is the external reset: it drops the loss flag and raises the reset
// trigger so the next tick starts a fresh game.
func (r *Register) Reset() {
	r.Clear(LossFlag)
	r.Set(ResetTrigger)
}

// Pending lists the raised commands in register order.
func (r *Register) Pending() []Command {
	var out []Command
	for c := Command(0); c < commandCount; c++ {
		if r.bits[c].Load() {
			out = append(out, c)
		}
	}
	return out
}
