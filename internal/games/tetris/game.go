// Package tetris implements falling-block Tetris on the shared grid core.
package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gridcade/internal/config"
	"github.com/vovakirdan/gridcade/internal/core"
	"github.com/vovakirdan/gridcade/internal/grid"
	"github.com/vovakirdan/gridcade/internal/loop"
	"github.com/vovakirdan/gridcade/internal/registry"
	"github.com/vovakirdan/gridcade/internal/scoring"
)

// Game implements Tetris.
type Game struct {
	cfg    config.TetrisConfig
	policy scoring.Policy
	rng    *rand.Rand

	world *grid.World
	piece grid.Piece

	score    int
	level    int
	lines    int
	pieces   int
	interval time.Duration
	gameOver bool
}

func init() {
	registry.Register("tetris", "Tetris", func(opts registry.Options) (registry.Game, error) {
		preset, err := config.ParsePreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		cfg, err := config.LoadTetris(opts.ConfigPath, preset)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// New creates a game ready to play with seed 1. Call Reset to reseed.
func New(cfg config.TetrisConfig) *Game {
	g := &Game{
		cfg:    cfg,
		policy: cfg.Level.Policy(),
		world:  grid.NewWorld(cfg.Board.Cols, cfg.Board.Rows),
	}
	g.Reset(1)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset clears the board and spawns the first piece.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.world.Clear()
	g.score = 0
	g.level = max(1, g.cfg.Level.StartLevel)
	g.lines = 0
	g.pieces = 0
	g.interval = g.policy.Interval(g.level)
	g.gameOver = false
	g.spawn()
}

// Step drops the active piece by one row.
func (g *Game) Step() loop.Outcome {
	if g.gameOver {
		return loop.Outcome{Terminal: true}
	}
	return g.drop()
}

// Handle applies a player command.
func (g *Game) Handle(cmd core.Command) loop.Outcome {
	if g.gameOver {
		return loop.Outcome{Terminal: true}
	}

	switch cmd {
	case core.CmdLeft:
		g.piece, _ = grid.TryMove(g.piece, g.world, -1, 0)
	case core.CmdRight:
		g.piece, _ = grid.TryMove(g.piece, g.world, 1, 0)
	case core.CmdRotate:
		g.piece, _ = grid.TryRotate(g.piece, g.world)
	case core.CmdSoftDrop, core.CmdDown:
		return g.drop()
	case core.CmdHardDrop, core.CmdUp:
		for {
			next, ok := grid.TryMove(g.piece, g.world, 0, 1)
			if !ok {
				break
			}
			g.piece = next
		}
		return g.lock()
	}
	return loop.Outcome{}
}

// Interval returns the current fall interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// Frame describes the board, the falling piece and the HUD values.
func (g *Game) Frame() loop.Frame {
	var sprites []loop.Sprite
	if !g.gameOver {
		for _, c := range g.piece.Cells() {
			if c.Y < 0 {
				continue
			}
			sprites = append(sprites, loop.Sprite{Point: c, Color: g.piece.Tag})
		}
	}

	return loop.Frame{
		Cols:     g.world.Cols(),
		Rows:     g.world.Rows(),
		Board:    g.world.Cells(),
		Sprites:  sprites,
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		Interval: g.interval,
		Status:   fmt.Sprintf("Lines: %d", g.lines),
	}
}

// drop moves the piece down one row, locking it when it cannot move.
func (g *Game) drop() loop.Outcome {
	next, ok := grid.TryMove(g.piece, g.world, 0, 1)
	if ok {
		g.piece = next
		return loop.Outcome{}
	}
	return g.lock()
}

// lock merges the piece, clears rows, scores and spawns the next piece.
func (g *Game) lock() loop.Outcome {
	grid.Merge(g.piece, g.world)
	cleared := g.world.ClearFullRows()
	g.lines += cleared

	r := g.policy.Apply(g.score, g.level, cleared)
	g.score, g.level, g.interval = r.Score, r.Level, r.Interval

	g.spawn()
	return loop.Outcome{Units: cleared, Terminal: g.gameOver}
}

// spawn places a random shape with an independently random colour at the
// top centre. A spawn that collides ends the game.
func (g *Game) spawn() {
	shape := shapes[g.rng.Intn(len(shapes))]
	tag := core.NeonPalette[g.rng.Intn(len(core.NeonPalette))]

	g.piece = grid.Piece{
		Shape: shape,
		X:     g.world.Cols()/2 - shape.Width()/2,
		Y:     0,
		Tag:   tag,
	}
	g.pieces++
	if grid.Collides(g.piece, g.world) {
		g.gameOver = true
	}
}
