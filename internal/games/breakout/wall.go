package breakout

import (
	"math/rand"

	"github.com/vovakirdan/gridcade/internal/config"
	"github.com/vovakirdan/gridcade/internal/core"
	"github.com/vovakirdan/gridcade/internal/grid"
)

// Wall is the brick layout stored in a grid world. Each brick spans
// several adjacent cells that share one colour.
type Wall struct {
	world *grid.World
	cfg   config.BreakoutBricks
	left  int // first brick column on the board
	alive int
}

// NewWall creates an empty wall on a board of the given size.
func NewWall(board config.BoardConfig, bricks config.BreakoutBricks) *Wall {
	return &Wall{
		world: grid.NewWorld(board.Cols, board.Rows),
		cfg:   bricks,
		left:  (board.Cols - bricks.Cols*bricks.Width) / 2,
	}
}

// Build fills the wall with bricks of random palette colours.
func (w *Wall) Build(rng *rand.Rand) {
	w.world.Clear()
	w.alive = 0
	for r := 0; r < w.cfg.Rows; r++ {
		for c := 0; c < w.cfg.Cols; c++ {
			tag := core.NeonPalette[rng.Intn(len(core.NeonPalette))]
			x0 := w.left + c*w.cfg.Width
			for x := x0; x < x0+w.cfg.Width; x++ {
				w.world.Set(x, w.cfg.Top+r, tag)
			}
			w.alive++
		}
	}
}

// Alive returns the number of bricks left.
func (w *Wall) Alive() int {
	return w.alive
}

// Has reports whether a brick covers (x, y). Cells off the board hold
// no brick.
func (w *Wall) Has(x, y int) bool {
	return w.world.InBounds(x, y) && w.world.IsOccupied(x, y)
}

// Hit removes the brick covering (x, y) and reports whether there was one.
func (w *Wall) Hit(x, y int) bool {
	if !w.Has(x, y) {
		return false
	}
	c := (x - w.left) / w.cfg.Width
	x0 := w.left + c*w.cfg.Width
	for bx := x0; bx < x0+w.cfg.Width; bx++ {
		w.world.Set(bx, y, core.ColorDefault)
	}
	w.alive--
	return true
}

// Cells returns a copy of the board.
func (w *Wall) Cells() [][]core.Color {
	return w.world.Cells()
}
