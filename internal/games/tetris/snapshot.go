package tetris

import "time"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Score    int
	Level    int
	Lines    int
	Pieces   int
	Interval time.Duration
	PieceX   int
	PieceY   int
	PieceW   int
	PieceH   int
	Filled   int
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		Pieces:   g.pieces,
		Interval: g.interval,
		PieceX:   g.piece.X,
		PieceY:   g.piece.Y,
		PieceW:   g.piece.Shape.Width(),
		PieceH:   g.piece.Shape.Height(),
		Filled:   g.world.Count(),
		GameOver: g.gameOver,
	}
}
