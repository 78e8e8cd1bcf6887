// Package pong implements Pong against a CPU opponent.
// The player controls the left paddle, the CPU the right one.
package pong

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
	PaddleChar = '█'
	BallChar   = '●'
)

// scale is the fixed-point unit: 1 cell = 1000.
const scale = 1000

func cell(v int) int {
	if v < 0 {
		return (v - scale + 1) / scale
	}
	return v / scale
}

// Game implements the Pong game logic. Positions and velocities are
// fixed-point integers.
type Game struct {
	cfg    config.PongConfig
	policy scoring.Policy
	rng    *rand.Rand

	playerY int // top edge of the left paddle, in cells
	cpuY    int // top edge of the right paddle, fixed-point

	ballX, ballY   int
	ballVX, ballVY int

	playerPoints int
	cpuPoints    int

	tick     uint64
	score    int
	level    int
	interval time.Duration
	gameOver bool
	won      bool
}

func init() {
	registry.Register("pong", "Pong", func(opts registry.Options) (registry.Game, error) {
		preset, err := config.ParsePreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		cfg, err := config.LoadPong(opts.ConfigPath, preset)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// New creates a game ready to play with seed 1. Call Reset to reseed.
func New(cfg config.PongConfig) *Game {
	g := &Game{
		cfg:    cfg,
		policy: cfg.Level.Policy(),
	}
	g.Reset(1)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

func (g *Game) leftCol() int  { return 1 }
func (g *Game) rightCol() int { return g.cfg.Board.Cols - 2 }

// Reset centres both paddles, zeroes the score and serves toward the CPU.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	top := (g.cfg.Board.Rows - g.cfg.Paddle.Height) / 2
	g.playerY = top
	g.cpuY = top * scale
	g.playerPoints = 0
	g.cpuPoints = 0
	g.tick = 0
	g.score = 0
	g.level = max(1, g.cfg.Level.StartLevel)
	g.interval = g.policy.Interval(g.level)
	g.gameOver = false
	g.won = false

	g.ballVX = -g.cfg.Ball.Speed
	g.serve()
}

// serve puts the ball in the centre, reverses its horizontal direction and
// picks a random vertical speed.
func (g *Game) serve() {
	g.ballX = g.cfg.Board.Cols * scale / 2
	g.ballY = g.cfg.Board.Rows * scale / 2
	g.ballVX = -g.ballVX
	half := g.cfg.Ball.Speed / 2
	g.ballVY = g.rng.Intn(2*half+1) - half
}

// Step moves the CPU paddle and the ball.
func (g *Game) Step() loop.Outcome {
	if g.gameOver {
		return loop.Outcome{Terminal: true}
	}
	g.tick++

	g.moveCPU()
	g.moveBall()

	switch {
	case g.ballX < 0:
		g.cpuPoints++
		if g.cpuPoints >= g.cfg.WinScore {
			g.gameOver = true
			return loop.Outcome{Terminal: true}
		}
		g.serve()
	case g.ballX >= g.cfg.Board.Cols*scale:
		g.playerPoints++
		r := g.policy.Apply(g.score, g.level, 1)
		g.score, g.level, g.interval = r.Score, r.Level, r.Interval
		if g.playerPoints >= g.cfg.WinScore {
			g.gameOver = true
			g.won = true
			return loop.Outcome{Units: 1, Terminal: true}
		}
		g.serve()
		return loop.Outcome{Units: 1}
	}
	return loop.Outcome{}
}

// moveCPU tracks the ball vertically. Inside the dead zone around the
// paddle centre it holds still, and it never moves faster than its speed.
func (g *Game) moveCPU() {
	centre := g.cpuY + g.cfg.Paddle.Height*scale/2
	diff := g.ballY - centre
	if core.Abs(diff) <= g.cfg.CPU.DeadZone*scale {
		return
	}
	step := min(g.cfg.CPU.Speed, core.Abs(diff))
	if diff < 0 {
		step = -step
	}
	maxY := (g.cfg.Board.Rows - g.cfg.Paddle.Height) * scale
	g.cpuY = core.Clamp(g.cpuY+step, 0, maxY)
}

func (g *Game) moveBall() {
	rows := g.cfg.Board.Rows * scale
	g.ballX += g.ballVX
	g.ballY += g.ballVY

	// Bounce off top/bottom walls
	if g.ballY < 0 {
		g.ballY = -g.ballY
		g.ballVY = -g.ballVY
	}
	if g.ballY >= rows {
		g.ballY = 2*rows - g.ballY - 1
		g.ballVY = -g.ballVY
	}

	bx, by := cell(g.ballX), cell(g.ballY)
	h := g.cfg.Paddle.Height

	// Ball hits left paddle (player)
	if g.ballVX < 0 && bx == g.leftCol() && by >= g.playerY && by < g.playerY+h {
		g.ballX = (g.leftCol() + 1) * scale
		g.ballVX = -g.ballVX
		g.spin(g.ballY - g.playerY*scale)
	}

	// Ball hits right paddle (CPU)
	cpuTop := cell(g.cpuY)
	if g.ballVX > 0 && bx == g.rightCol() && by >= cpuTop && by < cpuTop+h {
		g.ballX = g.rightCol()*scale - 1
		g.ballVX = -g.ballVX
		g.spin(g.ballY - g.cpuY)
	}
}

// spin adds vertical speed depending on where the ball met the paddle:
// the top half pushes it up, the bottom half down.
func (g *Game) spin(offset int) {
	height := g.cfg.Paddle.Height * scale
	hit := offset*2*scale/height - scale // -scale..scale
	speed := g.cfg.Ball.Speed
	g.ballVY = core.Clamp(g.ballVY+hit*speed/(2*scale), -speed, speed)
}

// Handle moves the player's paddle.
func (g *Game) Handle(cmd core.Command) loop.Outcome {
	if g.gameOver {
		return loop.Outcome{Terminal: true}
	}

	maxY := g.cfg.Board.Rows - g.cfg.Paddle.Height
	switch cmd {
	case core.CmdUp:
		g.playerY = core.Clamp(g.playerY-g.cfg.Paddle.Speed, 0, maxY)
	case core.CmdDown, core.CmdSoftDrop:
		g.playerY = core.Clamp(g.playerY+g.cfg.Paddle.Speed, 0, maxY)
	}
	return loop.Outcome{}
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// Frame draws both paddles and the ball.
func (g *Game) Frame() loop.Frame {
	h := g.cfg.Paddle.Height
	sprites := make([]loop.Sprite, 0, 2*h+1)
	cpuTop := cell(g.cpuY)
	for i, range_n := 0, h; i < range_n; i++ {
		sprites = append(sprites,
			loop.Sprite{Point: core.Point{X: g.leftCol(), Y: g.playerY + i}, Color: core.ColorBrightCyan, Rune: PaddleChar},
			loop.Sprite{Point: core.Point{X: g.rightCol(), Y: cpuTop + i}, Color: core.ColorBrightMagenta, Rune: PaddleChar},
		)
	}
	bx, by := cell(g.ballX), cell(g.ballY)
	if bx >= 0 && bx < g.cfg.Board.Cols {
		sprites = append(sprites, loop.Sprite{
			Point: core.Point{X: bx, Y: by},
			Color: core.ColorBrightWhite,
			Rune:  BallChar,
		})
	}

	return loop.Frame{
		Cols:     g.cfg.Board.Cols,
		Rows:     g.cfg.Board.Rows,
		Sprites:  sprites,
		Score:    g.score,
		Level:    g.level,
		Interval: g.interval,
		Won:      g.won,
		Status:   fmt.Sprintf("You %d - %d CPU", g.playerPoints, g.cpuPoints),
	}
}
