package app

import (
	"fmt"

	"ledtris/game"
	"ledtris/hal"
)

// Config controls game cadence. Times are in hal ticks (milliseconds).
type Config struct {
	Seed uint32
	// TickMillis is the period of one simulation tick.
	TickMillis int
	// GravityTicks raises the gravity command every N simulation ticks.
	GravityTicks int
}

const (
	defaultTickMillis   = 100
	defaultGravityTicks = 5

	// maxCatchUp bounds the ticks run for one Advance after a stall.
	maxCatchUp = 8
)

func (c Config) withDefaults() Config {
	if c.TickMillis <= 0 {
		c.TickMillis = defaultTickMillis
	}
	if c.GravityTicks <= 0 {
		c.GravityTicks = defaultGravityTicks
	}
	return c
}

// Session owns a game and schedules its ticks from a millisecond clock.
// It is not safe for concurrent use; hosts funnel input and time through
// one goroutine.
type Session struct {
	cfg  Config
	g    *game.Game
	log  hal.Logger
	led  hal.LED
	quit bool

	paused   bool
	started  bool
	lastTick uint64
	ticks    uint64
	rows     int
}

// NewSession starts a game. log and led may be nil.
func NewSession(cfg Config, log hal.Logger, led hal.LED) *Session {
	cfg = cfg.withDefaults()
	if log == nil {
		log = hal.NewLogger(nil)
	}
	return &Session{
		cfg: cfg,
		g:   game.New(game.NewRand(cfg.Seed)),
		log: log,
		led: led,
	}
}

func (s *Session) Game() *game.Game { return s.g }
func (s *Session) Paused() bool     { return s.paused }
func (s *Session) Ticks() uint64    { return s.ticks }

// QuitRequested reports whether an ActionQuit was received.
func (s *Session) QuitRequested() bool { return s.quit }

// Do applies a player action. Game commands are queued for the next tick.
func (s *Session) Do(a Action) {
	if cmd, ok := actionCommands[a]; ok {
		if !s.paused {
			s.g.Register().Set(cmd)
		}
		return
	}
	switch a {
	case ActionReset:
		s.g.Register().Reset()
	case ActionPause:
		s.paused = !s.paused
		if s.paused {
			s.log.WriteLineString("ledtris: paused")
		} else {
			s.log.WriteLineString("ledtris: resumed")
		}
	case ActionQuit:
		s.quit = true
	}
}

// Advance runs every tick due at time now and returns how many ran.
func (s *Session) Advance(now uint64) int {
	if !s.started {
		s.started = true
		s.lastTick = now
		s.tick()
		return 1
	}
	if s.paused || now < s.lastTick {
		s.lastTick = now
		return 0
	}
	period := uint64(s.cfg.TickMillis)
	n := 0
	for now-s.lastTick >= period {
		s.lastTick += period
		s.tick()
		n++
		if n >= maxCatchUp {
			s.lastTick = now
			break
		}
	}
	return n
}

func (s *Session) tick() {
	s.ticks++
	if s.ticks%uint64(s.cfg.GravityTicks) == 0 {
		s.g.Register().Set(game.GravityTick)
	}

	before := s.g.State()
	s.g.Tick()
	after := s.g.State()
	st := s.g.Stats()

	switch {
	case before == game.StateResetPending && after == game.StatePlaying:
		s.rows = 0
		s.log.WriteLineString(fmt.Sprintf("ledtris: new game tick=%d tile=%s", s.ticks, s.g.Tile().Kind))
		if s.led != nil {
			s.led.Low()
		}
	case before == game.StatePlaying && after == game.StateLossAnimation:
		s.log.WriteLineString(fmt.Sprintf("ledtris: game over tiles=%d rows=%d", st.Placed, st.RowsCleared))
		if s.led != nil {
			s.led.High()
		}
	}
	if st.RowsCleared > s.rows {
		s.log.WriteLineString(fmt.Sprintf("ledtris: cleared %d row(s), total %d", st.RowsCleared-s.rows, st.RowsCleared))
		s.rows = st.RowsCleared
	}
}

// Status is a one-line summary for the status strip.
func (s *Session) Status() string {
	if s.paused {
		return "paused"
	}
	st := s.g.Stats()
	switch s.g.State() {
	case game.StateLossAnimation:
		return fmt.Sprintf("game over  %d rows", st.RowsCleared)
	case game.StateResetPending:
		return "starting"
	default:
		return fmt.Sprintf("tiles %d  rows %d", st.Placed, st.RowsCleared)
	}
}
