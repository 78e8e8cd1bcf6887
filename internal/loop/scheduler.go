package loop

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gridcade/internal/core"
)

// Scheduler runs an Engine on a timer.
//
// Callbacks registered with OnFrame and OnGameOver are invoked while the
// scheduler holds its lock and must not call back into the Scheduler.
type Scheduler struct {
	mu sync.Mutex

	game   string
	engine Engine
	clock  Clock
	logger *log.Logger

	onFrame    func(Frame)
	onGameOver func(Frame)

	state State
	runID uuid.UUID
	ticks uint64

	// gen is bumped whenever the pending timer is abandoned. A timer
	// callback carrying an older generation does nothing.
	gen   uint64
	timer Timer
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger used for run lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// OnFrame registers a callback that receives a frame after every tick and
// every accepted command.
func OnFrame(f func(Frame)) Option {
	return func(s *Scheduler) {
		s.onFrame = f
	}
}

// OnGameOver registers a callback raised once when a run ends.
func OnGameOver(f func(Frame)) Option {
	return func(s *Scheduler) {
		s.onGameOver = f
	}
}

// NewScheduler creates an idle scheduler for the engine. game names the
// engine in logs and frames.
func NewScheduler(game string, engine Engine, opts ...Option) *Scheduler {
	s := &Scheduler{
		game:   game,
		engine: engine,
		clock:  SystemClock{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a new run from any state. A pending tick from an earlier run
// is cancelled before the engine is reset, so restarting never leaves two
// timers alive.
func (s *Scheduler) Start(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel()
	s.runID = uuid.New()
	s.ticks = 0
	s.engine.Reset(seed)
	s.state = StateRunning

	s.logger.Debug("run started", "game", s.game, "run", s.runID, "seed", seed,
		"interval", s.engine.Interval())

	s.emit()
	s.schedule()
}

// Stop cancels the pending tick and returns to idle. Stopping an idle
// scheduler does nothing.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return
	}
	s.cancel()
	s.state = StateIdle
	s.logger.Debug("run stopped", "game", s.game, "run", s.runID, "ticks", s.ticks)
}

// Send applies a command to the running game and reports whether it was
// accepted. Commands outside a run are dropped.
func (s *Scheduler) Send(cmd core.Command) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning || cmd == core.CmdNone {
		return false
	}
	out := s.engine.Handle(cmd)
	if out.Terminal {
		s.finish()
		return true
	}
	s.emit()
	return true
}

// State returns the current run state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// RunID returns the identifier of the current or last run. It is the zero
// UUID before the first Start.
func (s *Scheduler) RunID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runID
}

// Frame returns the latest frame regardless of state.
func (s *Scheduler) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame()
}

func (s *Scheduler) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != StateRunning {
		return
	}
	s.timer = nil
	s.ticks++

	out := s.engine.Step()
	if out.Terminal {
		s.finish()
		return
	}
	s.emit()
	s.schedule()
}

// schedule arms the next tick at the engine's current interval.
// Caller holds mu.
func (s *Scheduler) schedule() {
	gen := s.gen
	s.timer = s.clock.AfterFunc(s.engine.Interval(), func() {
		s.tick(gen)
	})
}

// cancel abandons the pending tick. Caller holds mu.
func (s *Scheduler) cancel() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// finish moves the run to game over. Caller holds mu.
func (s *Scheduler) finish() {
	s.cancel()
	s.state = StateGameOver

	f := s.frame()
	s.logger.Debug("game over", "game", s.game, "run", s.runID,
		"score", f.Score, "level", f.Level, "won", f.Won, "ticks", s.ticks)

	if s.onFrame != nil {
		s.onFrame(f)
	}
	if s.onGameOver != nil {
		s.onGameOver(f)
	}
}

func (s *Scheduler) emit() {
	if s.onFrame != nil {
		s.onFrame(s.frame())
	}
}

func (s *Scheduler) frame() Frame {
	f := s.engine.Frame()
	f.Game = s.game
	f.State = s.state
	f.Tick = s.ticks
	if s.runID != uuid.Nil {
		f.RunID = s.runID.String()
	}
	return f
}
