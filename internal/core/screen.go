package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a fixed-size character buffer. Games are drawn into it and the
// terminal front end styles it for output. Writes outside the buffer are
// dropped and reads outside it return a blank cell.
type Screen struct {
	width, height int
	cells         []Cell // row-major
}

// NewScreen returns a blank width x height screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.reset(width, height)
	return s
}

func (s *Screen) reset(width, height int) {
	s.width, s.height = max(0, width), max(0, height)
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
}

// index returns the slice offset of (x, y), or -1 when it is off screen.
func (s *Screen) index(x, y int) int {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return -1
	}
	return y*s.width + x
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions. The overlapping top-left region survives.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	old := *s
	s.reset(width, height)
	for y, range_n := 0, min(old.height, s.height); y < range_n; y++ {
		for x, range_n := 0, min(old.width, s.width); x < range_n; x++ {
			s.cells[s.index(x, y)] = old.cells[old.index(x, y)]
		}
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, ColorDefault)
}

func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if i := s.index(x, y); i >= 0 {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

func (s *Screen) GetCell(x, y int) Cell {
	if i := s.index(x, y); i >= 0 {
		return s.cells[i]
	}
	return blankCell
}

// DrawText writes text left to right from (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawColoredText(x, y, text, ColorDefault)
}

func (s *Screen) DrawColoredText(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetCell(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text on row y, centred by rune count.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// DrawBox outlines r with light box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	left, top, right, bottom := r.X, r.Y, r.Right()-1, r.Bottom()-1
	for x := left + 1; x < right; x++ {
		s.Set(x, top, '─')
		s.Set(x, bottom, '─')
	}
	for y := top + 1; y < bottom; y++ {
		s.Set(left, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(left, top, '┌')
	s.Set(right, top, '┐')
	s.Set(left, bottom, '└')
	s.Set(right, bottom, '┘')
}

// Row returns row y as plain text. Rows off screen read as spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var b strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// String returns the whole screen as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
