package grid

import "github.com/vovakirdan/gridcade/internal/core"

// Shape is a rectangular occupancy matrix indexed [row][col].
// True marks an occupied offset within the bounding box.
type Shape [][]bool

// ParseShape builds a shape from rows of '#' (occupied) and '.' (empty).
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// Width returns the bounding box width.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the bounding box height.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned 90 degrees clockwise
// (transpose, then reverse the row order of the transposed columns).
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for x := 0; x < w; x++ {
		out[x] = make([]bool, h)
		for y := 0; y < h; y++ {
			out[x][h-1-y] = s[y][x]
		}
	}
	return out
}

// Equal reports whether two shapes have identical occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Piece is an active shape anchored at (X, Y), the top-left corner of its
// bounding box, in world coordinates.
type Piece struct {
	Shape Shape
	X, Y  int
	Tag   core.Color
}

// Cells returns the absolute world coordinates of every occupied offset.
func (p Piece) Cells() []core.Point {
	var out []core.Point
	for dy, row := range p.Shape {
		for dx, on := range row {
			if on {
				out = append(out, core.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return out
}

// Collides reports whether any occupied offset of p falls outside the
// left, right or bottom edge of w, or onto an occupied cell. The top is
// open: offsets above row 0 only have to respect the side walls.
func Collides(p Piece, w *World) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= w.Cols() || c.Y >= w.Rows() {
			return true
		}
		if c.Y < 0 {
			continue
		}
		if w.IsOccupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// Rotate returns a rotated candidate. The caller decides whether to keep it.
func Rotate(p Piece) Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// MoveBy returns a translated candidate.
func MoveBy(p Piece, dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// TryRotate rotates p unless the rotated candidate collides, in which case
// p is returned unchanged. No wall kicks are attempted.
func TryRotate(p Piece, w *World) (Piece, bool) {
	next := Rotate(p)
	if Collides(next, w) {
		return p, false
	}
	return next, true
}

// TryMove translates p unless the candidate collides, in which case p is
// returned unchanged and ok is false.
func TryMove(p Piece, w *World, dx, dy int) (Piece, bool) {
	next := MoveBy(p, dx, dy)
	if Collides(next, w) {
		return p, false
	}
	return next, true
}

// Merge commits the piece's cells into the world using its tag.
// Cells above the top edge are dropped.
func Merge(p Piece, w *World) {
	for _, c := range p.Cells() {
		w.Set(c.X, c.Y, p.Tag)
	}
}
