package tetris

import "github.com/vovakirdan/gridcade/internal/grid"

// shapes are the seven tetrominoes in spawn orientation: I, O, T, L, J, S, Z.
var shapes = []grid.Shape{
	grid.ParseShape("####"),
	grid.ParseShape("##", "##"),
	grid.ParseShape("###", ".#."),
	grid.ParseShape("###", "#.."),
	grid.ParseShape("###", "..#"),
	grid.ParseShape("##.", ".##"),
	grid.ParseShape(".##", "##."),
}

// ShapeCount is the number of distinct tetrominoes.
func ShapeCount() int {
	return len(shapes)
}
