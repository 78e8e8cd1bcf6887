package pong

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	PlayerY      int
	CPUY         int
	BallX        int
	BallY        int
	BallVX       int
	BallVY       int
	PlayerPoints int
	CPUPoints    int
	Score        int
	Level        int
	GameOver     bool
	Won          bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		PlayerY:      g.playerY,
		CPUY:         g.cpuY,
		BallX:        g.ballX,
		BallY:        g.ballY,
		BallVX:       g.ballVX,
		BallVY:       g.ballVY,
		PlayerPoints: g.playerPoints,
		CPUPoints:    g.cpuPoints,
		Score:        g.score,
		Level:        g.level,
		GameOver:     g.gameOver,
		Won:          g.won,
	}
}
