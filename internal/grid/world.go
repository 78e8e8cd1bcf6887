// Package grid implements the discrete playing field shared by the arcade's
// grid games: a fixed-size World of colour-tagged cells, falling pieces that
// are collision-tested against it, and the toroidal topology used by Snake.
package grid

import "github.com/vovakirdan/gridcade/internal/core"

// World is a fixed ROWS x COLS matrix of cells. An empty cell holds
// core.ColorDefault; any other colour is the tag of the occupant.
// Dimensions never change after NewWorld.
type World struct {
	cols  int
	rows  int
	cells [][]core.Color // cells[y][x]
}

// NewWorld creates an empty world. Non-positive dimensions are raised to 1.
func NewWorld(cols, rows int) *World {
	w := &World{
		cols: max(1, cols),
		rows: max(1, rows),
	}
	w.cells = make([][]core.Color, w.rows)
	for y := range w.cells {
		w.cells[y] = make([]core.Color, w.cols)
	}
	return w
}

// Cols returns the world width.
func (w *World) Cols() int {
	return w.cols
}

// Rows returns the world height.
func (w *World) Rows() int {
	return w.rows
}

// InBounds reports whether (x, y) lies inside the world.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.cols && y >= 0 && y < w.rows
}

// IsOccupied reports whether the cell is taken. Cells outside the world
// count as occupied so the edges act as walls.
func (w *World) IsOccupied(x, y int) bool {
	if !w.InBounds(x, y) {
		return true
	}
	return !w.cells[y][x].IsEmpty()
}

// Get returns the tag at (x, y), or the empty tag out of bounds.
func (w *World) Get(x, y int) core.Color {
	if !w.InBounds(x, y) {
		return core.ColorDefault
	}
	return w.cells[y][x]
}

// Set stores tag at (x, y). Out-of-bounds writes are ignored.
// Setting core.ColorDefault empties the cell.
func (w *World) Set(x, y int, tag core.Color) {
	if !w.InBounds(x, y) {
		return
	}
	w.cells[y][x] = tag
}

// Clear empties every cell.
func (w *World) Clear() {
	for y := range w.cells {
		clear(w.cells[y])
	}
}

// Count returns the number of occupied cells.
func (w *World) Count() int {
	n := 0
	for _, row := range w.cells {
		for _, c := range row {
			if !c.IsEmpty() {
				n++
			}
		}
	}
	return n
}

// ClearFullRows removes every completely filled row and returns how many
// were removed. Rows are scanned bottom-up; when a row is removed everything
// above shifts down by one and an empty row appears at the top, so the same
// y is examined again before moving on.
func (w *World) ClearFullRows() int {
	cleared := 0
	for y := w.rows - 1; y >= 0; {
		if !w.rowFull(y) {
			y--
			continue
		}
		removed := w.cells[y]
		copy(w.cells[1:y+1], w.cells[:y])
		clear(removed)
		w.cells[0] = removed
		cleared++
	}
	return cleared
}

func (w *World) rowFull(y int) bool {
	for _, c := range w.cells[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Cells returns a deep copy of the cell matrix, indexed [y][x].
func (w *World) Cells() [][]core.Color {
	out := make([][]core.Color, w.rows)
	for y, row := range w.cells {
		out[y] = append([]core.Color(nil), row...)
	}
	return out
}
