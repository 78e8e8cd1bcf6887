// Package loop drives a grid game in real time. A Scheduler owns the timer,
// the run state (idle, running, game over) and the hand-off of frames to a
// front end; the rules of each game live behind the Engine interface.
package loop

import (
	"time"

	"github.com/vovakirdan/gridcade/internal/core"
)

// State is the lifecycle state of a scheduled run.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Outcome reports what a tick or a command did to the game.
type Outcome struct {
	// Units is the number of scoring units cleared (rows, food, bricks, points).
	Units int
	// Terminal is set once the run can no longer continue.
	Terminal bool
}

// Sprite is a single coloured cell drawn over the board.
type Sprite struct {
	core.Point
	Color core.Color
	Rune  rune
}

// Frame is a read-only picture of a game that a front end can draw without
// touching the engine.
type Frame struct {
	Game  string
	RunID string
	State State
	Tick  uint64

	Cols, Rows int
	// Board holds the settled cells, indexed [y][x]. Nil for games
	// without a settled grid.
	Board   [][]core.Color
	Sprites []Sprite

	Score    int
	Level    int
	Lines    int
	Lives    int
	Interval time.Duration
	Won      bool

	// Status is a short game specific line for the HUD.
	Status string
}

// Engine is the rule set of a single grid game. Engines are not safe for
// concurrent use; the Scheduler serialises every call.
type Engine interface {
	// Reset starts a fresh game from the given seed: empty board, new
	// piece or body, score 0, starting level and base speed.
	Reset(seed int64)
	// Step advances the game by one tick.
	Step() Outcome
	// Handle applies a player command.
	Handle(cmd core.Command) Outcome
	// Interval is the delay before the next tick at the current level.
	Interval() time.Duration
	// Frame describes the current state for rendering.
	Frame() Frame
}
