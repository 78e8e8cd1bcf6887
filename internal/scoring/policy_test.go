package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_TetrisTwoRows(t *testing.T) {
	p := Tetris()

	r := p.Apply(0, 1, 2)
	assert.Equal(t, 200, r.Score)
	assert.Equal(t, 1, r.Level, "level stays 1 below 500")
	assert.Equal(t, time.Second, r.Interval)

	r = p.Apply(r.Score, r.Level, 3)
	assert.Equal(t, 500, r.Score)
	assert.Equal(t, 2, r.Level)
	assert.Equal(t, 900*time.Millisecond, r.Interval)
}

func TestApply_ScaleByLevel(t *testing.T) {
	r := Tetris().Apply(1000, 3, 1)
	assert.Equal(t, 1300, r.Score)
}

func TestApply_NoUnitsNoChange(t *testing.T) {
	tests := []struct {
		name  string
		units int
	}{
		{"zero", 0},
		{"negative", -4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Already past the threshold, but nothing cleared this call.
			r := Snake().Apply(250, 1, tc.units)
			assert.Equal(t, 250, r.Score)
			assert.Equal(t, 1, r.Level)
		})
	}
}

func TestApply_OneLevelPerCall(t *testing.T) {
	// 4000 points in one go still only moves one level.
	r := Tetris().Apply(0, 1, 40)
	assert.Equal(t, 4000, r.Score)
	assert.Equal(t, 2, r.Level)
}

func TestApply_SnakeFood(t *testing.T) {
	p := Snake()
	score, level := 0, 1
	for range_i := 0; range_i < 9; range_i++ {
		r := p.Apply(score, level, 1)
		score, level = r.Score, r.Level
	}
	require.Equal(t, 90, score)
	assert.Equal(t, 1, level)

	r := p.Apply(score, level, 1)
	assert.Equal(t, 100, r.Score)
	assert.Equal(t, 2, r.Level)
	assert.Equal(t, 190*time.Millisecond, r.Interval)
}

func TestApply_ProgressionDisabled(t *testing.T) {
	p := Snake()
	p.Progression = false

	r := p.Apply(990, 1, 5)
	assert.Equal(t, 1040, r.Score)
	assert.Equal(t, 1, r.Level)
	assert.Equal(t, 200*time.Millisecond, r.Interval)
}

func TestApply_Monotonic(t *testing.T) {
	for name, p := range map[string]Policy{
		"snake":    Snake(),
		"tetris":   Tetris(),
		"breakout": Breakout(),
		"pong":     Pong(),
	} {
		t.Run(name, func(t *testing.T) {
			score, level := 0, 1
			interval := p.Interval(level)
			for i := 0; i < 200; i++ {
				r := p.Apply(score, level, i%5)
				require.GreaterOrEqual(t, r.Score, score)
				require.GreaterOrEqual(t, r.Level, level)
				require.LessOrEqual(t, r.Interval, interval)
				require.Positive(t, r.Interval)
				score, level, interval = r.Score, r.Level, r.Interval
			}
		})
	}
}

func TestInterval(t *testing.T) {
	p := Snake()

	tests := []struct {
		level    int
		expected time.Duration
	}{
		{0, 200 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 190 * time.Millisecond},
		{16, 50 * time.Millisecond},
		{17, 50 * time.Millisecond},
		{1000, 50 * time.Millisecond},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, p.Interval(tc.level), "level %d", tc.level)
	}
}

func TestInterval_NeverNonPositive(t *testing.T) {
	p := Policy{BaseInterval: 10 * time.Millisecond, IntervalStep: 5 * time.Millisecond}
	assert.Equal(t, time.Millisecond, p.Interval(50))

	p = Policy{}
	assert.Positive(t, p.Interval(1))
}
