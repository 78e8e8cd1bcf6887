package breakout

import (
	"testing"

	"github.com/vovakirdan/gridcade/internal/config"
	"github.com/vovakirdan/gridcade/internal/core"
)

func newGame(seed int64) *Game {
	g := New(config.DefaultBreakoutConfig())
	g.Reset(seed)
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Test that given the same inputs, the game produces identical results
	run := func() Snapshot {
		g := newGame(12345)
		for i := 0; i < 2000; i++ {
			switch {
			case i%7 < 3:
				g.Handle(core.CmdRight)
			case i%7 < 6:
				g.Handle(core.CmdLeft)
			}
			if g.Step().Terminal {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: %+v vs %+v", snap1, snap2)
	}
}

func TestGameReset(t *testing.T) {
	g := newGame(7)
	snap := g.Snapshot()

	if snap.Lives != 3 {
		t.Errorf("Lives = %d, want 3", snap.Lives)
	}
	if snap.BricksRemaining != 40 {
		t.Errorf("BricksRemaining = %d, want 8x5", snap.BricksRemaining)
	}
	if snap.PaddleX != (40-8)/2 {
		t.Errorf("PaddleX = %d, want centred", snap.PaddleX)
	}
	if snap.BallVY >= 0 {
		t.Error("ball should be served upward")
	}

	// Same colour across each brick
	cells := g.wall.Cells()
	row := cells[config.DefaultBreakoutConfig().Bricks.Top]
	for x := 4; x < 36; x += 4 {
		for i := 1; i < 4; i++ {
			if row[x+i] != row[x] {
				t.Fatalf("brick at x=%d is not one colour", x)
			}
		}
	}
}

func TestPaddleClamped(t *testing.T) {
	g := newGame(1)
	for range_i := 0; range_i < 50; range_i++ {
		g.Handle(core.CmdLeft)
	}
	if g.paddle.X != 0 {
		t.Errorf("PaddleX = %d after pushing left, want 0", g.paddle.X)
	}
	for range_i := 0; range_i < 50; range_i++ {
		g.Handle(core.CmdRight)
	}
	if g.paddle.X != 40-8 {
		t.Errorf("PaddleX = %d after pushing right, want 32", g.paddle.X)
	}
}

func TestFullWidthPaddleStaysOnBoard(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Paddle.Width = cfg.Board.Cols
	g := New(cfg)
	g.Reset(1)

	for _, cmd := range []core.Command{core.CmdLeft, core.CmdRight, core.CmdLeft} {
		g.Handle(cmd)
		if g.paddle.X != 0 {
			t.Fatalf("PaddleX = %d after %s, want 0", g.paddle.X, cmd)
		}
	}
}

func TestBrickHit(t *testing.T) {
	g := newGame(1)
	// Just below the bottom brick row (rows 2..6), moving straight up.
	g.ball = Ball{X: ToFixed(5) + 500, Y: ToFixed(7) + 100, VX: 0, VY: -400}

	out := g.Step()
	if out.Units != 1 {
		t.Fatalf("Units = %d, want 1", out.Units)
	}
	if g.wall.Alive() != 39 {
		t.Errorf("Alive = %d, want 39", g.wall.Alive())
	}
	if g.wall.Has(4, 6) || g.wall.Has(7, 6) {
		t.Error("whole brick should be removed")
	}
	if g.ball.VY <= 0 {
		t.Error("ball should bounce down off the brick")
	}
	if g.score != 10 {
		t.Errorf("score = %d, want 10", g.score)
	}
}

func TestSideWallBounce(t *testing.T) {
	g := newGame(1)
	g.ball = Ball{X: ToFixed(40) - 100, Y: ToFixed(15), VX: 400, VY: 0}

	g.Step()
	if g.ball.VX >= 0 {
		t.Error("ball should bounce off the right wall")
	}
	if g.ball.X >= ToFixed(40) {
		t.Errorf("ball X = %d, outside the field", g.ball.X)
	}
}

func TestPaddleBounceAngle(t *testing.T) {
	tests := []struct {
		name   string
		x      Fixed
		wantVX Fixed
	}{
		{"left edge", ToFixed(16), -400},
		{"centre", ToFixed(20), 0},
		{"right half", ToFixed(22), 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(1)
			g.ball = Ball{X: tc.x, Y: ToFixed(22) - 100, VX: 0, VY: 400}

			g.Step()
			if g.ball.VY != -400 {
				t.Errorf("VY = %d, want -400", g.ball.VY)
			}
			if g.ball.VX != tc.wantVX {
				t.Errorf("VX = %d, want %d", g.ball.VX, tc.wantVX)
			}
		})
	}
}

func TestMissCostsLife(t *testing.T) {
	g := newGame(1)
	g.ball = Ball{X: ToFixed(1), Y: ToFixed(23) + 800, VX: 0, VY: 400}

	out := g.Step()
	if out.Terminal {
		t.Fatal("first miss should not end the game")
	}
	if g.lives != 2 {
		t.Errorf("lives = %d, want 2", g.lives)
	}
	if g.ball.VY >= 0 || g.ball.Y.ToCell() != g.paddle.Y-1 {
		t.Errorf("ball should be served again, got %+v", g.ball)
	}
}

func TestLastLifeIsTerminal(t *testing.T) {
	g := newGame(1)
	g.lives = 1
	g.ball = Ball{X: ToFixed(1), Y: ToFixed(23) + 800, VX: 0, VY: 400}

	if !g.Step().Terminal {
		t.Fatal("losing the last life should end the game")
	}
	if g.Snapshot().Won {
		t.Error("game over is not a win")
	}
	if !g.Handle(core.CmdLeft).Terminal {
		t.Error("commands after game over stay terminal")
	}
}

func TestClearingWallWins(t *testing.T) {
	g := newGame(1)
	for y := 2; y < 7; y++ {
		for x := 4; x < 36; x += 4 {
			if x == 4 && y == 6 {
				continue
			}
			g.wall.Hit(x, y)
		}
	}
	if g.wall.Alive() != 1 {
		t.Fatalf("Alive = %d, want 1", g.wall.Alive())
	}

	g.ball = Ball{X: ToFixed(5) + 500, Y: ToFixed(7) + 100, VX: 0, VY: -400}
	out := g.Step()
	if !out.Terminal {
		t.Fatal("clearing the wall should end the game")
	}
	if !g.Frame().Won {
		t.Error("frame should report a win")
	}
}

func TestWallHitEmpty(t *testing.T) {
	g := newGame(1)
	if g.wall.Hit(0, 20) {
		t.Error("no brick at (0,20)")
	}
	if g.wall.Hit(-1, 3) {
		t.Error("no brick outside the board")
	}
}

func TestToCell(t *testing.T) {
	tests := []struct {
		in   Fixed
		want int
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{-1, -1},
		{-1000, -1},
		{-1001, -2},
	}
	for _, tc := range tests {
		if got := tc.in.ToCell(); got != tc.want {
			t.Errorf("Fixed(%d).ToCell() = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFrame(t *testing.T) {
	g := newGame(1)
	f := g.Frame()

	if f.Cols != 40 || f.Rows != 24 || f.Lives != 3 {
		t.Errorf("frame = %dx%d lives %d", f.Cols, f.Rows, f.Lives)
	}
	if len(f.Sprites) != 9 {
		t.Errorf("sprites = %d, want 8 paddle cells and the ball", len(f.Sprites))
	}
}
