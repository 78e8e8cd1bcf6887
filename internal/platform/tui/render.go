package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridcade/internal/core"
	"github.com/vovakirdan/gridcade/internal/loop"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

const (
	blockRune = '█'
	emptyRune = '·'
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, range_n := 0, s.Height(); y < range_n; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// boardLayout places a frame's board on a screen. Cells are drawn two
// characters wide when the screen has room so that they look square.
type boardLayout struct {
	left, top int
	cellW     int
	cols      int
	rows      int
}

func layoutFor(s *core.Screen, f loop.Frame) boardLayout {
	l := boardLayout{cols: f.Cols, rows: f.Rows, cellW: 1, top: 1}
	if f.Cols*2+2 <= s.Width() {
		l.cellW = 2
	}
	l.left = max(0, (s.Width()-(f.Cols*l.cellW+2))/2)
	return l
}

// cellX returns the screen column of the first character of board column x.
func (l boardLayout) cellX(x int) int {
	return l.left + 1 + x*l.cellW
}

func (l boardLayout) cellY(y int) int {
	return l.top + 1 + y
}

// box is the bordered rectangle around the board.
func (l boardLayout) box() core.Rect {
	return core.NewRect(l.left, l.top, l.cols*l.cellW+2, l.rows+2)
}

func (l boardLayout) drawCell(s *core.Screen, x, y int, r rune, c core.Color) {
	if !core.NewRect(0, 0, l.cols, l.rows).Contains(x, y) {
		return
	}
	sx, sy := l.cellX(x), l.cellY(y)
	for i, range_n := 0, l.cellW; i < range_n; i++ {
		s.SetCell(sx+i, sy, r, c)
	}
}

// DrawFrame draws a game frame into the screen: the bordered board, the
// sprites on top of it and a HUD line underneath.
func DrawFrame(s *core.Screen, f loop.Frame) {
	s.Clear()
	if f.Cols <= 0 || f.Rows <= 0 {
		s.DrawTextCentered(s.Height()/2, "Starting...")
		return
	}

	l := layoutFor(s, f)
	s.DrawBox(l.box())

	for y, range_n := 0, f.Rows; y < range_n; y++ {
		for x, range_n := 0, f.Cols; x < range_n; x++ {
			c := core.ColorDefault
			if y < len(f.Board) && x < len(f.Board[y]) {
				c = f.Board[y][x]
			}
			if c.IsEmpty() {
				l.drawCell(s, x, y, emptyRune, core.ColorGray)
				continue
			}
			l.drawCell(s, x, y, blockRune, c)
		}
	}

	for _, sp := range f.Sprites {
		r := sp.Rune
		if r == 0 {
			r = blockRune
		}
		l.drawCell(s, sp.X, sp.Y, r, sp.Color)
	}

	hudY := l.box().Bottom()
	s.DrawTextCentered(hudY, hudLine(f))
	if f.Status != "" {
		s.DrawTextCentered(hudY+1, f.Status)
	}

	switch f.State {
	case loop.StateGameOver:
		msg := "GAME OVER"
		if f.Won {
			msg = "YOU WIN"
		}
		drawBanner(s, l, msg, "R: restart  B: menu  Q: quit")
	case loop.StateIdle:
		drawBanner(s, l, "READY", "R: start  Q: quit")
	}
}

func hudLine(f loop.Frame) string {
	parts := []string{
		fmt.Sprintf("Score: %d", f.Score),
		fmt.Sprintf("Level: %d", f.Level),
	}
	if f.Lines > 0 {
		parts = append(parts, fmt.Sprintf("Lines: %d", f.Lines))
	}
	if f.Lives > 0 {
		parts = append(parts, fmt.Sprintf("Lives: %d", f.Lives))
	}
	return strings.Join(parts, "  ")
}

// drawBanner writes a two line message over the middle of the board.
func drawBanner(s *core.Screen, l boardLayout, title, hint string) {
	mid := l.cellY(l.rows / 2)
	width := l.cols*l.cellW + 2
	for _, line := range []struct {
		y    int
		text string
		c    core.Color
	}{
		{mid - 1, title, core.ColorBrightWhite},
		{mid, hint, core.ColorYellow},
	} {
		x := l.left + max(0, (width-len([]rune(line.text)))/2)
		s.DrawColoredText(x, line.y, line.text, line.c)
	}
}
