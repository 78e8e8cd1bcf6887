package snake

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/gridcade/internal/core"
	"github.com/vovakirdan/gridcade/internal/grid"
)

// Directions as unit steps.
var (
	DirUp    = core.Point{X: 0, Y: -1}
	DirDown  = core.Point{X: 0, Y: 1}
	DirLeft  = core.Point{X: -1, Y: 0}
	DirRight = core.Point{X: 1, Y: 0}
)

// Advance returns the cell after head in direction dir, wrapped around
// the torus.
func Advance(head, dir core.Point, t grid.Torus) core.Point {
	return t.Wrap(head.Add(dir.X, dir.Y))
}

// perpendicular reports whether a and b are at right angles.
func perpendicular(a, b core.Point) bool {
	return a.X*b.X+a.Y*b.Y == 0
}

// Body is the ordered list of snake segments, head first, with an
// occupancy index for constant-time collision checks.
type Body struct {
	torus grid.Torus
	segs  []core.Point
	// occupied counts segments per cell, keyed by Torus.Index.
	occupied *intmap.Map[int, int]
}

// NewBody creates a one-segment body at head.
func NewBody(t grid.Torus, head core.Point) *Body {
	b := &Body{
		torus:    t,
		occupied: intmap.New[int, int](t.Cells()),
	}
	b.Reset(head)
	return b
}

// Reset shrinks the body back to a single segment at head.
func (b *Body) Reset(head core.Point) {
	b.segs = b.segs[:0]
	b.occupied.Clear()
	b.push(b.torus.Wrap(head))
}

// Head returns the first segment.
func (b *Body) Head() core.Point {
	return b.segs[0]
}

// Tail returns the last segment.
func (b *Body) Tail() core.Point {
	return b.segs[len(b.segs)-1]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segs)
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []core.Point {
	out := make([]core.Point, len(b.segs))
	copy(out, b.segs)
	return out
}

// Occupies reports whether any segment covers p.
func (b *Body) Occupies(p core.Point) bool {
	n, ok := b.occupied.Get(b.torus.Index(p))
	return ok && n > 0
}

// Full reports whether the body covers every cell of the torus.
func (b *Body) Full() bool {
	return len(b.segs) >= b.torus.Cells()
}

// Collides reports whether moving the head onto next hits the body. When
// the snake is not growing the tail leaves its cell this tick, so next may
// take it.
func (b *Body) Collides(next core.Point, growing bool) bool {
	n, ok := b.occupied.Get(b.torus.Index(next))
	if !ok || n == 0 {
		return false
	}
	if !growing && next == b.Tail() && n == 1 {
		return false
	}
	return true
}

// Move adds next as the new head. Unless growing, the tail is dropped so
// the length stays the same.
func (b *Body) Move(next core.Point, growing bool) {
	if !growing {
		tail := b.Tail()
		b.segs = b.segs[:len(b.segs)-1]
		b.release(tail)
	}
	b.segs = append(b.segs, core.Point{})
	copy(b.segs[1:], b.segs)
	b.segs[0] = next
	b.occupy(next)
}

func (b *Body) push(p core.Point) {
	b.segs = append(b.segs, p)
	b.occupy(p)
}

func (b *Body) occupy(p core.Point) {
	idx := b.torus.Index(p)
	n, _ := b.occupied.Get(idx)
	b.occupied.Put(idx, n+1)
}

func (b *Body) release(p core.Point) {
	idx := b.torus.Index(p)
	n, _ := b.occupied.Get(idx)
	if n <= 1 {
		b.occupied.Del(idx)
		return
	}
	b.occupied.Put(idx, n-1)
}
