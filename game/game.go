// Package game is the simulation core: playground grid, tile catalog,
// transforms, line clearing and the per-tick state machine driven by the
// command register.
//
// A Game is not safe for concurrent use except for Register().Set, which an
// input goroutine may call at any time. Displays read through Snapshot from
// the goroutine that calls Tick.
package game

// State is the phase of the tick state machine, derived from the register.
type State uint8

const (
	StatePlaying State = iota
	StateResetPending
	StateLossAnimation
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateResetPending:
		return "reset-pending"
	case StateLossAnimation:
		return "loss"
	default:
		return "unknown"
	}
}

// Stats counts game events since the last reset.
type Stats struct {
	Spawned     int
	Placed      int
	RowsCleared int
}

// Game is the simulation context.
type Game struct {
	grid  Grid
	tile  Tile
	reg   Register
	rng   Randomizer
	stats Stats
}

// New returns a game with an empty grid and the reset trigger raised, so the
// first tick spawns a tile. A nil rng uses NewRand(1).
func New(rng Randomizer) *Game {
	if rng == nil {
		rng = NewRand(1)
	}
	g := &Game{rng: rng}
	g.reg.Set(ResetTrigger)
	return g
}

// Register returns the command register for the input source.
func (g *Game) Register() *Register { return &g.reg }

// Tile returns a copy of the active tile.
func (g *Game) Tile() Tile { return g.tile }

// SetTile replaces the active tile without touching the grid.
func (g *Game) SetTile(t Tile) { g.tile = t }

// Grid returns the playground for direct manipulation.
func (g *Game) Grid() *Grid { return &g.grid }

// Snapshot copies the playground into dst.
func (g *Game) Snapshot(dst *Grid) { *dst = g.grid }

// Cell returns the value at (x, y), or Empty outside the grid.
func (g *Game) Cell(x, y int) Cell {
	if !InBounds(Point{X: x, Y: y}) {
		return Empty
	}
	return g.grid[x][y]
}

// Stats returns the counters since the last reset.
func (g *Game) Stats() Stats { return g.stats }

// State reports the phase the next tick will run.
func (g *Game) State() State {
	switch {
	case g.reg.Has(LossFlag):
		return StateLossAnimation
	case g.reg.Has(ResetTrigger):
		return StateResetPending
	default:
		return StatePlaying
	}
}

// Tick advances the state machine by one step.
func (g *Game) Tick() {
	switch {
	case g.reg.Has(LossFlag):
		if g.reg.Has(ResetTrigger) {
			g.lossSweep()
		}
	case g.reg.Has(ResetTrigger):
		g.reg.Clear(ResetTrigger)
		g.stats = Stats{}
		g.Spawn()
		g.grid.Clear()
	default:
		g.play()
	}
}

func (g *Game) play() {
	g.Unapply()
	if g.reg.Take(RotateCCW) {
		g.Rotate(CCW)
	}
	if g.reg.Take(RotateCW) {
		g.Rotate(CW)
	}
	if g.reg.Take(MoveLeft) {
		g.Translate(-1)
	}
	if g.reg.Take(MoveRight) {
		g.Translate(1)
	}
	soft := g.reg.Take(SoftDrop)
	if soft {
		g.CollapseMarkedRows()
	}
	gravity := g.reg.Take(GravityTick)
	if (soft || gravity) && !g.FallOne() {
		g.land()
	}
	g.Apply()
}

func (g *Game) land() {
	if !g.Apply() {
		g.reg.Set(LossFlag)
		g.reg.Set(ResetTrigger)
		g.grid.FillRow(Height-1, Blink)
		return
	}
	g.stats.Placed++
	g.Spawn()
	g.DetectCompletedRows()
}
