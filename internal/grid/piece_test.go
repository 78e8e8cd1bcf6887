package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridcade/internal/core"
)

var testShapes = map[string]Shape{
	"I": ParseShape("####"),
	"O": ParseShape("##", "##"),
	"T": ParseShape("###", ".#."),
	"L": ParseShape("###", "#.."),
	"J": ParseShape("###", "..#"),
	"S": ParseShape("##.", ".##"),
	"Z": ParseShape(".##", "##."),
}

func TestShape_RotateClockwise(t *testing.T) {
	rotated := ParseShape("###", "#..").Rotate()
	expected := ParseShape("##", ".#", ".#")

	assert.True(t, expected.Equal(rotated), "got %v", rotated)
	assert.Equal(t, 2, rotated.Width())
	assert.Equal(t, 3, rotated.Height())
}

func TestShape_FourRotationsIsIdentity(t *testing.T) {
	for name, shape := range testShapes {
		t.Run(name, func(t *testing.T) {
			s := shape
			for range_i := 0; range_i < 4; range_i++ {
				s = s.Rotate()
			}
			assert.True(t, shape.Equal(s))
		})
	}
}

func TestCollides(t *testing.T) {
	w := NewWorld(10, 20)
	w.Set(5, 10, core.ColorRed)
	bar := testShapes["I"]

	tests := []struct {
		name     string
		piece    Piece
		expected bool
	}{
		{"free space", Piece{Shape: bar, X: 0, Y: 0}, false},
		{"touching right wall", Piece{Shape: bar, X: 6, Y: 0}, false},
		{"past right wall", Piece{Shape: bar, X: 7, Y: 0}, true},
		{"past left wall", Piece{Shape: bar, X: -1, Y: 0}, true},
		{"on bottom row", Piece{Shape: bar, X: 0, Y: 19}, false},
		{"below bottom", Piece{Shape: bar, X: 0, Y: 20}, true},
		{"overlapping block", Piece{Shape: bar, X: 3, Y: 10}, true},
		{"next to block", Piece{Shape: bar, X: 0, Y: 10}, false},
		{"above the top is open", Piece{Shape: bar, X: 0, Y: -3}, false},
		{"above the top still walled", Piece{Shape: bar, X: -2, Y: -3}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Collides(tc.piece, w))
		})
	}
}

func TestCollides_EmptyOffsetsIgnored(t *testing.T) {
	w := NewWorld(10, 20)
	w.Set(0, 1, core.ColorRed)

	// The T's bottom-left offset is empty, so the block at (0,1) is not hit.
	p := Piece{Shape: testShapes["T"], X: 0, Y: 0}
	assert.False(t, Collides(p, w))

	w.Set(1, 1, core.ColorRed)
	assert.True(t, Collides(p, w))
}

func TestCollides_MatchesCellCheck(t *testing.T) {
	// For every anchor on a cluttered board, Collides must agree with a
	// direct check of the piece's cells.
	w := NewWorld(6, 8)
	for _, c := range []core.Point{{X: 0, Y: 7}, {X: 3, Y: 5}, {X: 5, Y: 2}, {X: 2, Y: 2}} {
		w.Set(c.X, c.Y, core.ColorGreen)
	}

	for name, shape := range testShapes {
		for y := -2; y < 10; y++ {
			for x := -2; x < 8; x++ {
				p := Piece{Shape: shape, X: x, Y: y}
				want := false
				for _, c := range p.Cells() {
					if c.X < 0 || c.X >= w.Cols() || c.Y >= w.Rows() {
						want = true
						break
					}
					if c.Y >= 0 && w.IsOccupied(c.X, c.Y) {
						want = true
						break
					}
				}
				require.Equal(t, want, Collides(p, w), "%s at (%d,%d)", name, x, y)
			}
		}
	}
}

func TestTryRotate_RevertsOnCollision(t *testing.T) {
	w := NewWorld(10, 20)
	vertical := Piece{Shape: testShapes["I"].Rotate(), X: 8, Y: 0}

	// Rotating a vertical bar at x=8 would need four columns.
	got, ok := TryRotate(vertical, w)
	assert.False(t, ok)
	assert.True(t, vertical.Shape.Equal(got.Shape))

	// With room it rotates.
	vertical.X = 3
	got, ok = TryRotate(vertical, w)
	assert.True(t, ok)
	assert.Equal(t, 4, got.Shape.Width())
}

func TestTryMove(t *testing.T) {
	w := NewWorld(10, 20)
	p := Piece{Shape: testShapes["O"], X: 0, Y: 0}

	moved, ok := TryMove(p, w, -1, 0)
	assert.False(t, ok)
	assert.Equal(t, p.X, moved.X)

	moved, ok = TryMove(p, w, 1, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, moved.X)

	p.Y = 18
	_, ok = TryMove(p, w, 0, 1)
	assert.False(t, ok, "moving into the floor collides")
}

func TestMerge(t *testing.T) {
	w := NewWorld(10, 20)
	p := Piece{Shape: testShapes["T"], X: 2, Y: 18, Tag: core.ColorMagenta}
	Merge(p, w)

	assert.Equal(t, 4, w.Count())
	assert.Equal(t, core.ColorMagenta, w.Get(3, 19))
	assert.False(t, w.IsOccupied(2, 19))
}

func TestMerge_FourWidePieceOnTenWideBoard(t *testing.T) {
	w := NewWorld(10, 20)
	Merge(Piece{Shape: testShapes["I"], X: 0, Y: 19, Tag: core.ColorCyan}, w)
	assert.Equal(t, 0, w.ClearFullRows(), "only 4 of 10 cells filled")

	Merge(Piece{Shape: testShapes["I"], X: 4, Y: 19, Tag: core.ColorCyan}, w)
	w.Set(8, 19, core.ColorRed)
	w.Set(9, 19, core.ColorRed)
	assert.Equal(t, 1, w.ClearFullRows())
	assert.Equal(t, 0, w.Count())
}

func TestMerge_DropsCellsAboveTop(t *testing.T) {
	w := NewWorld(4, 4)
	Merge(Piece{Shape: testShapes["O"], X: 0, Y: -1, Tag: core.ColorRed}, w)
	assert.Equal(t, 2, w.Count())
}
