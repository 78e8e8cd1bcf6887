// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gridcade/internal/scoring"
)

// BoardConfig is the size of a playing field in cells.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// LevelConfig defines scoring and speed progression. Durations are written
// as strings in YAML ("200ms", "1s").
type LevelConfig struct {
	PointsPerUnit int           `yaml:"points_per_unit"`
	ScaleByLevel  bool          `yaml:"scale_by_level"`
	Threshold     int           `yaml:"threshold"` // score per level
	BaseInterval  time.Duration `yaml:"base_interval"`
	IntervalStep  time.Duration `yaml:"interval_step"`
	MinInterval   time.Duration `yaml:"min_interval"`
	StartLevel    int           `yaml:"start_level"`
	Fixed         bool          `yaml:"fixed"` // disables level progression
}

// Policy converts the level settings into a scoring policy.
func (l LevelConfig) Policy() scoring.Policy {
	return scoring.Policy{
		PointsPerUnit: l.PointsPerUnit,
		ScaleByLevel:  l.ScaleByLevel,
		ThresholdBase: l.Threshold,
		BaseInterval:  l.BaseInterval,
		IntervalStep:  l.IntervalStep,
		MinInterval:   l.MinInterval,
		Progression:   !l.Fixed,
	}
}

func levelFromPolicy(p scoring.Policy) LevelConfig {
	return LevelConfig{
		PointsPerUnit: p.PointsPerUnit,
		ScaleByLevel:  p.ScaleByLevel,
		Threshold:     p.ThresholdBase,
		BaseInterval:  p.BaseInterval,
		IntervalStep:  p.IntervalStep,
		MinInterval:   p.MinInterval,
		StartLevel:    1,
		Fixed:         !p.Progression,
	}
}

// Validate rejects settings no game can run with.
func (l LevelConfig) Validate() error {
	var errs []error
	if l.PointsPerUnit < 0 {
		errs = append(errs, fmt.Errorf("points_per_unit must not be negative, got %d", l.PointsPerUnit))
	}
	if l.BaseInterval <= 0 {
		errs = append(errs, fmt.Errorf("base_interval must be positive, got %s", l.BaseInterval))
	}
	if l.MinInterval <= 0 {
		errs = append(errs, fmt.Errorf("min_interval must be positive, got %s", l.MinInterval))
	}
	if l.IntervalStep < 0 {
		errs = append(errs, fmt.Errorf("interval_step must not be negative, got %s", l.IntervalStep))
	}
	if l.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("start_level must be at least 1, got %d", l.StartLevel))
	}
	return errors.Join(errs...)
}

func (b BoardConfig) validate(minCols, minRows int) error {
	if b.Cols < minCols || b.Rows < minRows {
		return fmt.Errorf("board must be at least %dx%d, got %dx%d", minCols, minRows, b.Cols, b.Rows)
	}
	return nil
}

// Position is a cell coordinate.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Start Position    `yaml:"start"`
	Level LevelConfig `yaml:"level"`
}

// Validate checks the snake settings.
func (c SnakeConfig) Validate() error {
	return errors.Join(c.Board.validate(2, 2), c.Level.Validate())
}

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board BoardConfig `yaml:"board"`
	Level LevelConfig `yaml:"level"`
}

// Validate checks the tetris settings. The board must fit the widest
// tetromino.
func (c TetrisConfig) Validate() error {
	return errors.Join(c.Board.validate(4, 4), c.Level.Validate())
}

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Board  BoardConfig    `yaml:"board"`
	Bricks BreakoutBricks `yaml:"bricks"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball"`
	Lives  int            `yaml:"lives"`
	Level  LevelConfig    `yaml:"level"`
}

// BreakoutBricks describes the brick wall.
type BreakoutBricks struct {
	Cols  int `yaml:"cols"`
	Rows  int `yaml:"rows"`
	Width int `yaml:"width"` // cells per brick
	Top   int `yaml:"top"`   // first brick row
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width int `yaml:"width"`
	Speed int `yaml:"speed"` // cells per command
}

// maxBallSpeed is one cell per tick. Faster balls could pass through a
// brick between two ticks.
const maxBallSpeed = 1000

// BreakoutBall defines the ball. Speed is in thousandths of a cell per tick.
type BreakoutBall struct {
	Speed int `yaml:"speed"`
}

// Validate checks the breakout settings.
func (c BreakoutConfig) Validate() error {
	var errs []error
	errs = append(errs, c.Board.validate(8, 8), c.Level.Validate())
	if c.Bricks.Cols < 1 || c.Bricks.Rows < 1 || c.Bricks.Width < 1 {
		errs = append(errs, fmt.Errorf("bricks must be positive, got %dx%d width %d",
			c.Bricks.Cols, c.Bricks.Rows, c.Bricks.Width))
	}
	if c.Bricks.Cols*c.Bricks.Width > c.Board.Cols {
		errs = append(errs, fmt.Errorf("brick wall (%d cells) wider than board (%d)",
			c.Bricks.Cols*c.Bricks.Width, c.Board.Cols))
	}
	if c.Bricks.Top < 0 || c.Bricks.Top+c.Bricks.Rows >= c.Board.Rows-2 {
		errs = append(errs, fmt.Errorf("brick rows %d..%d leave no room for the paddle",
			c.Bricks.Top, c.Bricks.Top+c.Bricks.Rows))
	}
	if c.Paddle.Width < 1 || c.Paddle.Width > c.Board.Cols {
		errs = append(errs, fmt.Errorf("paddle width %d out of range", c.Paddle.Width))
	}
	if c.Paddle.Speed < 1 {
		errs = append(errs, fmt.Errorf("paddle speed must be positive, got %d", c.Paddle.Speed))
	}
	if c.Ball.Speed < 1 || c.Ball.Speed > maxBallSpeed {
		errs = append(errs, fmt.Errorf("ball speed must be 1..%d, got %d", maxBallSpeed, c.Ball.Speed))
	}
	if c.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Lives))
	}
	return errors.Join(errs...)
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Board    BoardConfig `yaml:"board"`
	Paddle   PongPaddle  `yaml:"paddle"`
	Ball     PongBall    `yaml:"ball"`
	CPU      PongCPU     `yaml:"cpu"`
	WinScore int         `yaml:"win_score"`
	Level    LevelConfig `yaml:"level"`
}

// PongPaddle defines both paddles.
type PongPaddle struct {
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // cells per command
}

// PongBall defines the ball. Speed is in thousandths of a cell per tick.
type PongBall struct {
	Speed int `yaml:"speed"`
}

// PongCPU tunes the computer opponent. Speed is in thousandths of a cell
// per tick; the CPU ignores the ball while it is within DeadZone cells of
// the paddle centre.
type PongCPU struct {
	Speed    int `yaml:"speed"`
	DeadZone int `yaml:"dead_zone"`
}

// Validate checks the pong settings.
func (c PongConfig) Validate() error {
	var errs []error
	errs = append(errs, c.Board.validate(10, 6), c.Level.Validate())
	if c.Paddle.Height < 1 || c.Paddle.Height >= c.Board.Rows {
		errs = append(errs, fmt.Errorf("paddle height %d out of range", c.Paddle.Height))
	}
	if c.Paddle.Speed < 1 {
		errs = append(errs, fmt.Errorf("paddle speed must be positive, got %d", c.Paddle.Speed))
	}
	if c.Ball.Speed < 1 || c.Ball.Speed > maxBallSpeed {
		errs = append(errs, fmt.Errorf("ball speed must be 1..%d, got %d", maxBallSpeed, c.Ball.Speed))
	}
	if c.CPU.Speed < 0 || c.CPU.DeadZone < 0 {
		errs = append(errs, fmt.Errorf("cpu speed and dead zone must not be negative"))
	}
	if c.WinScore < 1 {
		errs = append(errs, fmt.Errorf("win_score must be positive, got %d", c.WinScore))
	}
	return errors.Join(errs...)
}
