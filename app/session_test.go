package app

import (
	"bytes"
	"testing"

	"ledtris/game"
	"ledtris/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLED struct {
	on      bool
	changes int
}

func (l *fakeLED) High() {
	l.on = true
	l.changes++
}

func (l *fakeLED) Low() {
	l.on = false
	l.changes++
}

func newTestSession(cfg Config) (*Session, *bytes.Buffer, *fakeLED) {
	var buf bytes.Buffer
	led := &fakeLED{}
	return NewSession(cfg, hal.NewLogger(&buf), led), &buf, led
}

func TestConfigDefaults(t *testing.T) {
	s, _, _ := newTestSession(Config{})
	assert.Equal(t, defaultTickMillis, s.cfg.TickMillis)
	assert.Equal(t, defaultGravityTicks, s.cfg.GravityTicks)
}

func TestAdvanceCadence(t *testing.T) {
	s, _, _ := newTestSession(Config{TickMillis: 100})

	assert.Equal(t, 1, s.Advance(0), "first call ticks immediately")
	assert.Equal(t, 0, s.Advance(99))
	assert.Equal(t, 1, s.Advance(100))
	assert.Equal(t, 2, s.Advance(350))
	assert.Equal(t, uint64(4), s.Ticks())

	assert.Equal(t, maxCatchUp, s.Advance(10_000), "stall is bounded")
	assert.Equal(t, 0, s.Advance(10_050))
	assert.Equal(t, 1, s.Advance(10_100))
}

func TestAdvanceClockGoingBackwards(t *testing.T) {
	s, _, _ := newTestSession(Config{TickMillis: 10})
	s.Advance(1000)
	assert.Equal(t, 0, s.Advance(5))
	assert.Equal(t, 1, s.Advance(15))
}

func TestGravityEveryNTicks(t *testing.T) {
	s, _, _ := newTestSession(Config{TickMillis: 10, GravityTicks: 2})

	s.Advance(0)
	require.Equal(t, game.StatePlaying, s.Game().State())
	require.Equal(t, -1, s.Game().Tile().Pivot.Y)

	s.Advance(10)
	assert.Equal(t, 0, s.Game().Tile().Pivot.Y)
	s.Advance(20)
	assert.Equal(t, 0, s.Game().Tile().Pivot.Y)
	s.Advance(30)
	assert.Equal(t, 1, s.Game().Tile().Pivot.Y)
}

func TestDoQueuesCommands(t *testing.T) {
	s, _, _ := newTestSession(Config{})
	s.Do(ActionLeft)
	s.Do(ActionDrop)
	s.Do(ActionNone)

	reg := s.Game().Register()
	assert.True(t, reg.Has(game.MoveLeft))
	assert.True(t, reg.Has(game.SoftDrop))
	assert.False(t, reg.Has(game.MoveRight))
}

func TestPauseHoldsTicksAndDropsMoves(t *testing.T) {
	s, buf, _ := newTestSession(Config{TickMillis: 10})
	s.Advance(0)

	s.Do(ActionPause)
	require.True(t, s.Paused())
	assert.Equal(t, "paused", s.Status())
	s.Do(ActionRight)
	assert.False(t, s.Game().Register().Has(game.MoveRight))
	assert.Equal(t, 0, s.Advance(500))

	s.Do(ActionPause)
	assert.False(t, s.Paused())
	assert.Equal(t, 0, s.Advance(505), "resume restarts the period")
	assert.Equal(t, 1, s.Advance(510))
	assert.Contains(t, buf.String(), "ledtris: paused\n")
	assert.Contains(t, buf.String(), "ledtris: resumed\n")
}

func TestQuitRequested(t *testing.T) {
	s, _, _ := newTestSession(Config{})
	assert.False(t, s.QuitRequested())
	s.Do(ActionQuit)
	assert.True(t, s.QuitRequested())
}

// topOut fills the playground so the next soft drop lands the tile while it
// still sticks out above the grid.
func topOut(s *Session) {
	for y := 0; y < game.Height; y++ {
		s.Game().Grid().FillRow(y, game.Red)
	}
	s.Do(ActionDrop)
}

func TestLossAndResetLifecycle(t *testing.T) {
	s, buf, led := newTestSession(Config{TickMillis: 10, GravityTicks: 1000})
	assert.Equal(t, "starting", s.Status())

	s.Advance(0)
	assert.Contains(t, buf.String(), "ledtris: new game tick=1 tile=")
	assert.Equal(t, "tiles 0  rows 0", s.Status())
	assert.False(t, led.on)

	topOut(s)
	s.Advance(10)
	require.Equal(t, game.StateLossAnimation, s.Game().State())
	assert.Contains(t, buf.String(), "ledtris: game over tiles=0 rows=0")
	assert.True(t, led.on)
	assert.Equal(t, "game over  0 rows", s.Status())

	s.Advance(20)
	for y := 0; y < game.Height; y++ {
		assert.True(t, s.Game().Grid().RowMarked(y), "row %d", y)
	}
	require.Equal(t, game.StateLossAnimation, s.Game().State(), "loss holds until reset")

	s.Do(ActionReset)
	s.Advance(30)
	assert.Equal(t, game.StatePlaying, s.Game().State())
	assert.Equal(t, game.Grid{}, *s.Game().Grid())
	assert.False(t, led.on)
	assert.Equal(t, 3, led.changes)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("ledtris: new game")))
}

func TestRowsClearedAreLogged(t *testing.T) {
	s, buf, _ := newTestSession(Config{TickMillis: 10, GravityTicks: 1000})
	s.Advance(0)

	s.Game().Grid().FillRow(game.Height-1, game.Blink)
	s.Do(ActionDrop)
	s.Advance(10)

	assert.Equal(t, 1, s.Game().Stats().RowsCleared)
	assert.Contains(t, buf.String(), "ledtris: cleared 1 row(s), total 1")
	assert.Equal(t, "tiles 0  rows 1", s.Status())
}
