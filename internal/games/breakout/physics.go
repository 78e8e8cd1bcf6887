package breakout

// Fixed-point scale factor: 1 cell = 1000 units.
// Keeps sub-cell ball motion deterministic.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to cell coordinate, rounding toward negative
// infinity so positions just left of or above the field map outside it.
func (f Fixed) ToCell() int {
	if f < 0 {
		return (int(f) - Scale + 1) / Scale
	}
	return int(f) / Scale
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Ball represents the ball state with fixed-point coordinates.
type Ball struct {
	X, Y   Fixed // Position
	VX, VY Fixed // Velocity per tick
}

// Cell returns the ball's cell.
func (b *Ball) Cell() (x, y int) {
	return b.X.ToCell(), b.Y.ToCell()
}

// Paddle is the player's paddle on a fixed row.
type Paddle struct {
	X     int // Left edge cell
	Y     int
	Width int
}

// Left returns left edge in fixed-point.
func (p *Paddle) Left() Fixed {
	return ToFixed(p.X)
}

// Right returns right edge in fixed-point (exclusive).
func (p *Paddle) Right() Fixed {
	return ToFixed(p.X + p.Width)
}

// MoveBy shifts the paddle, keeping it inside [0, cols). A paddle as wide
// as the board stays at column 0.
func (p *Paddle) MoveBy(dx, cols int) {
	p.X = max(0, min(p.X+dx, cols-p.Width))
}

// bounceOffPaddle reflects a descending ball that reaches the paddle row
// inside the paddle. The horizontal speed depends on where the ball lands:
// the centre sends it straight up, the edges at a steep angle.
func bounceOffPaddle(ball *Ball, paddle *Paddle, speed Fixed) bool {
	if ball.VY <= 0 || ball.Y.ToCell() != paddle.Y {
		return false
	}
	if ball.X < paddle.Left() || ball.X >= paddle.Right() {
		return false
	}

	// hit in [-Scale, Scale): left edge to right edge
	width := paddle.Right() - paddle.Left()
	hit := (ball.X-paddle.Left())*2*Scale/width - Scale

	ball.VX = hit * speed / Scale
	ball.VY = -speed
	ball.Y = ToFixed(paddle.Y) - 1
	return true
}
