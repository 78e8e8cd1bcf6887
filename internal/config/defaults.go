package config

import (
	"embed"
	"path"

	"github.com/vovakirdan/gridcade/internal/scoring"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// DefaultSnakeConfig returns the built-in Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{Cols: 20, Rows: 20},
		Start: Position{X: 10, Y: 10},
		Level: levelFromPolicy(scoring.Snake()),
	}
}

// DefaultTetrisConfig returns the built-in Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{Cols: 10, Rows: 20},
		Level: levelFromPolicy(scoring.Tetris()),
	}
}

// DefaultBreakoutConfig returns the built-in Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Board:  BoardConfig{Cols: 40, Rows: 24},
		Bricks: BreakoutBricks{Cols: 8, Rows: 5, Width: 4, Top: 2},
		Paddle: BreakoutPaddle{Width: 8, Speed: 2},
		Ball:   BreakoutBall{Speed: 400}, // 0.4 cells per tick
		Lives:  3,
		Level:  levelFromPolicy(scoring.Breakout()),
	}
}

// DefaultPongConfig returns the built-in Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Board:    BoardConfig{Cols: 40, Rows: 20},
		Paddle:   PongPaddle{Height: 5, Speed: 1},
		Ball:     PongBall{Speed: 500},
		CPU:      PongCPU{Speed: 250, DeadZone: 1},
		WinScore: 5,
		Level:    levelFromPolicy(scoring.Pong()),
	}
}

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	data, err := defaultFS.ReadFile(path.Join("defaults", gameID+".yaml"))
	if err != nil {
		return nil
	}
	return data
}
