// Package scoring turns cleared units (rows, food, bricks, points) into
// score, level and tick interval for the grid games.
package scoring

import "time"

// Policy describes how a game scores and speeds up.
type Policy struct {
	// PointsPerUnit is added to the score for every unit cleared.
	PointsPerUnit int
	// ScaleByLevel multiplies the award by the current level.
	ScaleByLevel bool
	// ThresholdBase is the score needed per level: once the score reaches
	// level*ThresholdBase the level increases by one.
	ThresholdBase int

	BaseInterval time.Duration
	IntervalStep time.Duration
	MinInterval  time.Duration

	// Progression disables level changes when false.
	Progression bool
}

// Result is the state after applying an award.
type Result struct {
	Score    int
	Level    int
	Interval time.Duration
}

// minTick is the floor used when a policy is configured with a
// non-positive MinInterval.
const minTick = time.Millisecond

// Apply awards units to the given score and level. The level rises at most
// one step per call and only when something was cleared. Negative units
// are treated as zero.
func (p Policy) Apply(score, level, units int) Result {
	level = max(1, level)
	if units > 0 {
		award := units * p.PointsPerUnit
		if p.ScaleByLevel {
			award *= level
		}
		score += max(0, award)

		if p.Progression && p.ThresholdBase > 0 && score >= level*p.ThresholdBase {
			level++
		}
	}
	return Result{
		Score:    score,
		Level:    level,
		Interval: p.Interval(level),
	}
}

// Interval returns the tick interval for a level:
// max(MinInterval, BaseInterval-(level-1)*IntervalStep). It is never zero
// or negative.
func (p Policy) Interval(level int) time.Duration {
	level = max(1, level)
	floor := max(minTick, p.MinInterval)
	d := p.BaseInterval - time.Duration(level-1)*max(0, p.IntervalStep)
	return max(floor, d)
}

// Snake is the policy of the snake game: 10 points per food, a level every
// 100 points, 200ms ticks that shrink by 10ms down to 50ms.
func Snake() Policy {
	return Policy{
		PointsPerUnit: 10,
		ThresholdBase: 100,
		BaseInterval:  200 * time.Millisecond,
		IntervalStep:  10 * time.Millisecond,
		MinInterval:   50 * time.Millisecond,
		Progression:   true,
	}
}

// Tetris awards 100 points per row times the level, levels up every 500
// points and speeds up from 1s by 100ms per level down to 100ms.
func Tetris() Policy {
	return Policy{
		PointsPerUnit: 100,
		ScaleByLevel:  true,
		ThresholdBase: 500,
		BaseInterval:  time.Second,
		IntervalStep:  100 * time.Millisecond,
		MinInterval:   100 * time.Millisecond,
		Progression:   true,
	}
}

// Breakout awards 10 points per brick.
func Breakout() Policy {
	return Policy{
		PointsPerUnit: 10,
		ThresholdBase: 100,
		BaseInterval:  20 * time.Millisecond,
		IntervalStep:  time.Millisecond,
		MinInterval:   12 * time.Millisecond,
		Progression:   true,
	}
}

// Pong counts one point per rally won and speeds up every 3 points.
func Pong() Policy {
	return Policy{
		PointsPerUnit: 1,
		ThresholdBase: 3,
		BaseInterval:  33 * time.Millisecond,
		IntervalStep:  4 * time.Millisecond,
		MinInterval:   16 * time.Millisecond,
		Progression:   true,
	}
}
