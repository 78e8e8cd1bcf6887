package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	require.Equal(t, 6, s.Width())
	require.Equal(t, 3, s.Height())

	assert.Equal(t, strings.Repeat("      \n", 2)+"      ", s.String())
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(5, 2))
}

func TestScreenCellsClipToBounds(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 2, '#', ColorCyan)
	assert.Equal(t, Cell{Rune: '#', Color: ColorCyan}, s.GetCell(1, 2))
	assert.Equal(t, '#', s.Get(1, 2))

	for _, p := range []Point{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		assert.NotPanics(t, func() { s.Set(p.X, p.Y, 'X') })
		assert.Equal(t, ' ', s.Get(p.X, p.Y), "outside %v reads blank", p)
	}

	s.Clear()
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(1, 2))
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	s.Resize(2, 3)
	assert.Equal(t, "ab\nde\n  ", s.String())

	s.Resize(4, 3)
	assert.Equal(t, "ab  ", s.Row(0))

	s.Resize(4, 3)
	assert.Equal(t, 4, s.Width(), "same size is a no-op")
}

func TestScreenText(t *testing.T) {
	s := NewScreen(8, 3)

	s.DrawColoredText(6, 0, "xyz", ColorRed)
	assert.Equal(t, "      xy", s.Row(0), "text clips at the right edge")
	assert.Equal(t, ColorRed, s.GetCell(7, 0).Color)

	s.DrawTextCentered(1, "héé")
	assert.Equal(t, "  héé   ", s.Row(1), "centering counts runes")

	assert.Equal(t, "        ", s.Row(-1))
	assert.Equal(t, "        ", s.Row(3))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	assert.Equal(t, strings.Join(want, "\n"), s.String())
}
