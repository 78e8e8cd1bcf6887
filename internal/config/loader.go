package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// load resolves a game config, applies the difficulty preset through
// apply and validates the result.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> hardcoded default.
// Files are decoded over the hardcoded default, so a file only needs the
// keys it changes. An explicit path must exist and parse; the other
// locations are skipped when missing or broken.
func load[T validator](gameID, customPath string, fallback func() T, apply func(*T)) (T, error) {
	cfg, err := resolve(gameID, customPath, fallback)
	if err != nil {
		return cfg, err
	}
	apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s config: %w", gameID, err)
	}
	return cfg, nil
}

func resolve[T any](gameID, customPath string, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadSnake loads the Snake configuration with a preset applied.
func LoadSnake(customPath string, preset DifficultyPreset) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig, func(c *SnakeConfig) {
		ApplySnakePreset(c, preset)
	})
}

// LoadTetris loads the Tetris configuration with a preset applied.
func LoadTetris(customPath string, preset DifficultyPreset) (TetrisConfig, error) {
	return load("tetris", customPath, DefaultTetrisConfig, func(c *TetrisConfig) {
		ApplyTetrisPreset(c, preset)
	})
}

// LoadBreakout loads the Breakout configuration with a preset applied.
func LoadBreakout(customPath string, preset DifficultyPreset) (BreakoutConfig, error) {
	return load("breakout", customPath, DefaultBreakoutConfig, func(c *BreakoutConfig) {
		ApplyBreakoutPreset(c, preset)
	})
}

// LoadPong loads the Pong configuration with a preset applied.
func LoadPong(customPath string, preset DifficultyPreset) (PongConfig, error) {
	return load("pong", customPath, DefaultPongConfig, func(c *PongConfig) {
		ApplyPongPreset(c, preset)
	})
}
