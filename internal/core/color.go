package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
// The zero value doubles as the "empty" tag in grid worlds.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// NeonPalette is the seven-colour set used for tetrominoes and bricks.
var NeonPalette = []Color{
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorBrightYellow,
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightBlue,
	ColorOrange,
}

// IsEmpty reports whether the color marks an unoccupied cell.
func (c Color) IsEmpty() bool {
	return c == ColorDefault
}
