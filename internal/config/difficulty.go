package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// hardStartLevel is where the hard preset begins.
const hardStartLevel = 3

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyLevelPreset adjusts start level and progression for a preset.
func ApplyLevelPreset(l *LevelConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		l.StartLevel = 1
	case DifficultyHard:
		l.StartLevel = max(l.StartLevel, hardStartLevel)
	case DifficultyFixed:
		l.Fixed = true
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	ApplyLevelPreset(&cfg.Level, preset)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	ApplyLevelPreset(&cfg.Level, preset)
}

// ApplyPongPreset modifies the config based on a difficulty preset.
// The CPU gets faster on hard and slower on easy.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	ApplyLevelPreset(&cfg.Level, preset)

	switch preset {
	case DifficultyEasy:
		cfg.CPU.Speed = cfg.CPU.Speed * 3 / 4
	case DifficultyHard:
		cfg.CPU.Speed = cfg.CPU.Speed * 3 / 2
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// The easy paddle grows by two cells but never past the board.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	ApplyLevelPreset(&cfg.Level, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
		cfg.Paddle.Width = min(cfg.Paddle.Width+2, cfg.Board.Cols)
	case DifficultyHard:
		cfg.Lives = 2
		cfg.Paddle.Width = max(2, cfg.Paddle.Width-2)
	}
}
