// Package breakout implements a brick breaker: a paddle, one ball and a
// wall of bricks held in a grid world.
package breakout

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gridcade/internal/config"
	"github.com/vovakirdan/gridcade/internal/core"
	"github.com/vovakirdan/gridcade/internal/loop"
	"github.com/vovakirdan/gridcade/internal/registry"
	"github.com/vovakirdan/gridcade/internal/scoring"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// Game implements the Breakout game logic.
type Game struct {
	cfg    config.BreakoutConfig
	policy scoring.Policy
	rng    *rand.Rand
	speed  Fixed

	wall   *Wall
	paddle Paddle
	ball   Ball

	tick     uint64
	score    int
	level    int
	lives    int
	interval time.Duration
	gameOver bool
	won      bool
}

func init() {
	registry.Register("breakout", "Breakout", func(opts registry.Options) (registry.Game, error) {
		preset, err := config.ParsePreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		cfg, err := config.LoadBreakout(opts.ConfigPath, preset)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// New creates a game ready to play with seed 1. Call Reset to reseed.
func New(cfg config.BreakoutConfig) *Game {
	g := &Game{
		cfg:    cfg,
		policy: cfg.Level.Policy(),
		speed:  Fixed(cfg.Ball.Speed),
		wall:   NewWall(cfg.Board, cfg.Bricks),
	}
	g.Reset(1)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset builds a fresh wall, restores lives and serves the ball.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.score = 0
	g.level = max(1, g.cfg.Level.StartLevel)
	g.lives = g.cfg.Lives
	g.interval = g.policy.Interval(g.level)
	g.gameOver = false
	g.won = false

	g.wall.Build(g.rng)
	g.paddle = Paddle{
		X:     (g.cfg.Board.Cols - g.cfg.Paddle.Width) / 2,
		Y:     g.cfg.Board.Rows - 2,
		Width: g.cfg.Paddle.Width,
	}
	g.serve()
}

// serve puts the ball just above the paddle centre heading up at a
// random diagonal.
func (g *Game) serve() {
	g.ball = Ball{
		X:  g.paddle.Left() + ToFixed(g.paddle.Width)/2,
		Y:  ToFixed(g.paddle.Y) - Scale/2,
		VX: g.speed / 2,
		VY: -g.speed,
	}
	if g.rng.Intn(2) == 0 {
		g.ball.VX = -g.ball.VX
	}
}

// Step moves the ball one tick. Each axis moves separately so a brick hit
// reflects the axis that ran into it.
func (g *Game) Step() loop.Outcome {
	if g.gameOver {
		return loop.Outcome{Terminal: true}
	}
	g.tick++

	cols := ToFixed(g.cfg.Board.Cols)
	units := 0

	// Horizontal
	nx := g.ball.X + g.ball.VX
	switch {
	case nx < 0:
		nx = -nx
		g.ball.VX = -g.ball.VX
	case nx >= cols:
		nx = 2*cols - nx - 1
		g.ball.VX = -g.ball.VX
	}
	if g.wall.Hit(nx.ToCell(), g.ball.Y.ToCell()) {
		units++
		g.ball.VX = -g.ball.VX
	} else {
		g.ball.X = nx
	}

	// Vertical
	ny := g.ball.Y + g.ball.VY
	if ny < 0 {
		ny = -ny
		g.ball.VY = -g.ball.VY
	}
	if g.wall.Hit(g.ball.X.ToCell(), ny.ToCell()) {
		units++
		g.ball.VY = -g.ball.VY
	} else {
		g.ball.Y = ny
	}

	bounceOffPaddle(&g.ball, &g.paddle, g.speed)

	if units > 0 {
		r := g.policy.Apply(g.score, g.level, units)
		g.score, g.level, g.interval = r.Score, r.Level, r.Interval
	}

	if g.wall.Alive() == 0 {
		g.won = true
		g.gameOver = true
		return loop.Outcome{Units: units, Terminal: true}
	}

	if g.ball.Y.ToCell() >= g.cfg.Board.Rows {
		g.lives--
		if g.lives <= 0 {
			g.gameOver = true
			return loop.Outcome{Units: units, Terminal: true}
		}
		g.serve()
	}
	return loop.Outcome{Units: units}
}

// Handle moves the paddle.
func (g *Game) Handle(cmd core.Command) loop.Outcome {
	if g.gameOver {
		return loop.Outcome{Terminal: true}
	}

	switch cmd {
	case core.CmdLeft:
		g.paddle.MoveBy(-g.cfg.Paddle.Speed, g.cfg.Board.Cols)
	case core.CmdRight:
		g.paddle.MoveBy(g.cfg.Paddle.Speed, g.cfg.Board.Cols)
	}
	return loop.Outcome{}
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// Frame draws the wall, the paddle and the ball.
func (g *Game) Frame() loop.Frame {
	sprites := make([]loop.Sprite, 0, g.paddle.Width+1)
	for x := g.paddle.X; x < g.paddle.X+g.paddle.Width; x++ {
		sprites = append(sprites, loop.Sprite{
			Point: core.Point{X: x, Y: g.paddle.Y},
			Color: core.ColorBrightWhite,
			Rune:  PaddleChar,
		})
	}
	bx, by := g.ball.Cell()
	if by >= 0 && by < g.cfg.Board.Rows {
		sprites = append(sprites, loop.Sprite{
			Point: core.Point{X: bx, Y: by},
			Color: core.ColorBrightWhite,
			Rune:  BallChar,
		})
	}

	return loop.Frame{
		Cols:     g.cfg.Board.Cols,
		Rows:     g.cfg.Board.Rows,
		Board:    g.wall.Cells(),
		Sprites:  sprites,
		Score:    g.score,
		Level:    g.level,
		Lives:    g.lives,
		Interval: g.interval,
		Won:      g.won,
		Status:   fmt.Sprintf("Bricks: %d", g.wall.Alive()),
	}
}
