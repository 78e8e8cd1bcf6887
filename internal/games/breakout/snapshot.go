package breakout

// Snapshot contains the complete game state for determinism testing.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick            uint64
	PaddleX         int
	PaddleWidth     int
	Score           int
	Level           int
	Lives           int
	BricksRemaining int
	BallX, BallY    int
	BallVX, BallVY  int
	GameOver        bool
	Won             bool

	// Board cells row by row, 0 for empty
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	cells := g.wall.Cells()
	data := make([]int, 0, len(cells)*g.cfg.Board.Cols)
	for _, row := range cells {
		for _, c := range row {
			data = append(data, int(c))
		}
	}

	return Snapshot{
		Tick:            g.tick,
		PaddleX:         g.paddle.X,
		PaddleWidth:     g.paddle.Width,
		Score:           g.score,
		Level:           g.level,
		Lives:           g.lives,
		BricksRemaining: g.wall.Alive(),
		BallX:           int(g.ball.X),
		BallY:           int(g.ball.Y),
		BallVX:          int(g.ball.VX),
		BallVY:          int(g.ball.VY),
		GameOver:        g.gameOver,
		Won:             g.won,
		BrickData:       data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.PaddleX, snap.PaddleWidth, snap.Score, snap.Level, snap.Lives,
		snap.BricksRemaining, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.GameOver {
		h = h*31 + 1
	}
	if snap.Won {
		h = h*31 + 2
	}
	return h
}
