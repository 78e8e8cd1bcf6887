package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		id       string
		decode   func([]byte) (any, error)
		expected any
	}{
		{"snake", decodeAs[SnakeConfig], DefaultSnakeConfig()},
		{"tetris", decodeAs[TetrisConfig], DefaultTetrisConfig()},
		{"breakout", decodeAs[BreakoutConfig], DefaultBreakoutConfig()},
		{"pong", decodeAs[PongConfig], DefaultPongConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			data := GetDefaultYAML(tc.id)
			if data == nil {
				t.Fatalf("no embedded default for %s", tc.id)
			}
			got, err := tc.decode(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("embedded %s differs from hardcoded default:\n got  %+v\n want %+v", tc.id, got, tc.expected)
			}
		})
	}
}

func decodeAs[T any](data []byte) (any, error) {
	var cfg T
	err := yaml.Unmarshal(data, &cfg)
	return cfg, err
}

func TestDefaultsValidate(t *testing.T) {
	for name, cfg := range map[string]validator{
		"snake":    DefaultSnakeConfig(),
		"tetris":   DefaultTetrisConfig(),
		"breakout": DefaultBreakoutConfig(),
		"pong":     DefaultPongConfig(),
	} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s default invalid: %v", name, err)
		}
	}
}

func TestGetDefaultYAMLUnknown(t *testing.T) {
	if GetDefaultYAML("nope") != nil {
		t.Error("expected nil for unknown game")
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	content := "board:\n  cols: 12\nlevel:\n  base_interval: 800ms\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path, DifficultyNormal)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}

	if cfg.Board.Cols != 12 {
		t.Errorf("Cols = %d, want 12", cfg.Board.Cols)
	}
	if cfg.Board.Rows != 20 {
		t.Errorf("Rows = %d, want default 20", cfg.Board.Rows)
	}
	if cfg.Level.BaseInterval != 800*time.Millisecond {
		t.Errorf("BaseInterval = %s, want 800ms", cfg.Level.BaseInterval)
	}
	if cfg.Level.Threshold != 500 {
		t.Errorf("Threshold = %d, want default 500", cfg.Level.Threshold)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml"), DifficultyNormal); err == nil {
		t.Error("expected error for missing explicit config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(broken, DifficultyNormal); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("level:\n  base_interval: 0s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(invalid, DifficultyNormal)
	if err == nil || !strings.Contains(err.Error(), "base_interval") {
		t.Errorf("expected validation error naming base_interval, got %v", err)
	}
}

func TestLoadValidatesAfterPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, []byte("paddle:\n  width: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path, DifficultyEasy)
	if err != nil {
		t.Fatalf("LoadBreakout(easy): %v", err)
	}
	if cfg.Paddle.Width != cfg.Board.Cols {
		t.Errorf("paddle width = %d, want clamped to board cols %d", cfg.Paddle.Width, cfg.Board.Cols)
	}
	if cfg.Lives != 5 {
		t.Errorf("lives = %d, want easy preset 5", cfg.Lives)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config does not validate: %v", err)
	}

	// Validation sees the config after the preset has been applied.
	zeroStart := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(zeroStart, []byte("level:\n  start_level: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(zeroStart, DifficultyNormal); err == nil {
		t.Error("normal: expected start_level 0 to be rejected")
	}
	if _, err := LoadPong(zeroStart, DifficultyHard); err != nil {
		t.Errorf("hard lifts start_level to 3, got %v", err)
	}
}

func TestBreakoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *BreakoutConfig)
	}{
		{"wall wider than board", func(c *BreakoutConfig) { c.Bricks.Cols = 20 }},
		{"no lives", func(c *BreakoutConfig) { c.Lives = 0 }},
		{"bricks reach the paddle", func(c *BreakoutConfig) { c.Bricks.Rows = 30 }},
		{"zero paddle", func(c *BreakoutConfig) { c.Paddle.Width = 0 }},
		{"zero ball speed", func(c *BreakoutConfig) { c.Ball.Speed = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPongValidate(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Paddle.Height = cfg.Board.Rows
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for paddle as tall as the board")
	}

	cfg = DefaultPongConfig()
	cfg.WinScore = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero win score")
	}
}

func TestLevelPolicy(t *testing.T) {
	cfg := DefaultTetrisConfig()
	p := cfg.Level.Policy()

	if p.PointsPerUnit != 100 || !p.ScaleByLevel || p.ThresholdBase != 500 {
		t.Errorf("unexpected policy %+v", p)
	}
	if !p.Progression {
		t.Error("progression should be on by default")
	}

	cfg.Level.Fixed = true
	if cfg.Level.Policy().Progression {
		t.Error("fixed level must disable progression")
	}
}
