package grid

import "github.com/vovakirdan/gridcade/internal/core"

// Torus is an implicit grid whose edges wrap around: leaving one side
// re-enters from the opposite side, so there are no walls.
type Torus struct {
	Cols, Rows int
}

// Wrap maps any point onto the torus.
func (t Torus) Wrap(p core.Point) core.Point {
	return core.Point{X: mod(p.X, t.Cols), Y: mod(p.Y, t.Rows)}
}

// Index returns a dense cell key for a wrapped point, suitable for maps
// keyed by integer.
func (t Torus) Index(p core.Point) int {
	w := t.Wrap(p)
	return w.Y*t.Cols + w.X
}

// Cells returns the number of cells on the torus.
func (t Torus) Cells() int {
	return t.Cols * t.Rows
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	return ((a % n) + n) % n
}
