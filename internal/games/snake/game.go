// Package snake implements Snake on a wrapping grid.
package snake

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

// Game implements the Snake game.
type Game struct {
	cfg    config.SnakeConfig
	policy scoring.Policy
	rng    *rand.Rand
	torus  grid.Torus
	tick   uint64

	body      *Body
	direction core.Point
	nextDir   core.Point // Buffered direction for next move
	food      core.Point
	hasFood   bool

	score     int
	level     int
	foodEaten int
	interval  time.Duration
	gameOver  bool
}

func init() {
	registry.Register("snake", "Snake", func(opts registry.Options) (registry.Game, error) {
		preset, err := config.ParsePreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		cfg, err := config.LoadSnake(opts.ConfigPath, preset)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// New creates a game ready to play with seed 1. Call Reset to reseed.
func New(cfg config.SnakeConfig) *Game {
	t := grid.Torus{Cols: max(1, cfg.Board.Cols), Rows: max(1, cfg.Board.Rows)}
	g := &Game{
		cfg:    cfg,
		policy: cfg.Level.Policy(),
		torus:  t,
		body:   NewBody(t, core.Point{X: cfg.Start.X, Y: cfg.Start.Y}),
	}
	g.Reset(1)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset places a one-segment snake at the start cell heading right and
// spawns food.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.body.Reset(core.Point{X: g.cfg.Start.X, Y: g.cfg.Start.Y})
	g.direction = DirRight
	g.nextDir = DirRight
	g.score = 0
	g.foodEaten = 0
	g.level = max(1, g.cfg.Level.StartLevel)
	g.interval = g.policy.Interval(g.level)
	g.gameOver = false
	g.spawnFood()
}

// Step moves the snake one cell.
func (g *Game) Step() loop.Outcome {
	if g.gameOver {
		return loop.Outcome{Terminal: true}
	}
	g.tick++

	// Apply buffered direction
	g.direction = g.nextDir

	next := Advance(g.body.Head(), g.direction, g.torus)
	eating := g.hasFood && next == g.food

	if g.body.Collides(next, eating) {
		g.gameOver = true
		return loop.Outcome{Terminal: true}
	}
	g.body.Move(next, eating)

	if !eating {
		return loop.Outcome{}
	}

	g.foodEaten++
	r := g.policy.Apply(g.score, g.level, 1)
	g.score, g.level, g.interval = r.Score, r.Level, r.Interval
	g.spawnFood()
	return loop.Outcome{Units: 1}
}

// Handle buffers a turn. Only turns at right angles to the current heading
// are accepted, so the snake cannot reverse into its neck.
func (g *Game) Handle(cmd core.Command) loop.Outcome {
	if g.gameOver {
		return loop.Outcome{Terminal: true}
	}

	var dir core.Point
	switch cmd {
	case core.CmdUp:
		dir = DirUp
	case core.CmdDown, core.CmdSoftDrop:
		dir = DirDown
	case core.CmdLeft:
		dir = DirLeft
	case core.CmdRight:
		dir = DirRight
	default:
		return loop.Outcome{}
	}

	if perpendicular(dir, g.direction) {
		g.nextDir = dir
	}
	return loop.Outcome{}
}

// Interval returns the current move interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// Frame draws the food and the body, head last so it stays on top.
func (g *Game) Frame() loop.Frame {
	segs := g.body.Segments()
	sprites := make([]loop.Sprite, 0, len(segs)+1)
	if g.hasFood {
		sprites = append(sprites, loop.Sprite{Point: g.food, Color: core.ColorBrightRed, Rune: '●'})
	}
	for i := len(segs) - 1; i >= 0; i-- {
		s := loop.Sprite{Point: segs[i], Color: core.ColorGreen}
		if i == 0 {
			s.Color = core.ColorBrightGreen
		}
		sprites = append(sprites, s)
	}

	return loop.Frame{
		Cols:     g.torus.Cols,
		Rows:     g.torus.Rows,
		Sprites:  sprites,
		Score:    g.score,
		Level:    g.level,
		Interval: g.interval,
		Status:   fmt.Sprintf("Length: %d", g.body.Len()),
	}
}

// spawnFood picks uniformly random cells until one is free of the body.
// A body that fills the field leaves no food.
func (g *Game) spawnFood() {
	if g.body.Full() {
		g.hasFood = false
		return
	}
	for {
		p := core.Point{X: g.rng.Intn(g.torus.Cols), Y: g.rng.Intn(g.torus.Rows)}
		if !g.body.Occupies(p) {
			g.food = p
			g.hasFood = true
			return
		}
	}
}
