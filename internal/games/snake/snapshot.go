package snake

import (
	"time"

	"github.com/vovakirdan/gridcade/internal/core"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	FoodEaten int
	SnakeLen  int
	Head      core.Point
	Dir       core.Point
	Food      core.Point
	Interval  time.Duration
	GameOver  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Level:     g.level,
		Score:     g.score,
		FoodEaten: g.foodEaten,
		SnakeLen:  g.body.Len(),
		Head:      g.body.Head(),
		Dir:       g.direction,
		Food:      g.food,
		Interval:  g.interval,
		GameOver:  g.gameOver,
	}
}
