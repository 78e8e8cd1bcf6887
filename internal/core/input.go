package core

// Command is a discrete player intent delivered to a running game.
// Front ends translate keys into commands; games ignore the ones they
// have no use for.
type Command int

const (
	CmdNone     Command = iota
	CmdLeft             // Left arrow, A - move piece/paddle left, turn snake left
	CmdRight            // Right arrow, D - move right
	CmdUp               // W - turn snake up, move pong paddle up
	CmdDown             // S - turn snake down, move pong paddle down
	CmdRotate           // Space - rotate the falling piece
	CmdSoftDrop         // Down arrow in tetris - drop one row
	CmdHardDrop         // Up arrow in tetris - drop to rest
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdLeft:
		return "Left"
	case CmdRight:
		return "Right"
	case CmdUp:
		return "Up"
	case CmdDown:
		return "Down"
	case CmdRotate:
		return "Rotate"
	case CmdSoftDrop:
		return "SoftDrop"
	case CmdHardDrop:
		return "HardDrop"
	default:
		return "Unknown"
	}
}
