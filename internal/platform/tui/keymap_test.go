package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyCommands(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CmdLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.CmdRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.CmdUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.CmdDown},
		{"a", runeKey('a'), core.CmdLeft},
		{"d", runeKey('d'), core.CmdRight},
		{"w", runeKey('w'), core.CmdUp},
		{"s", runeKey('s'), core.CmdDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CmdRotate},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CmdHardDrop},
		{"unbound", runeKey('z'), core.CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ctl := km.MapKey(tt.msg)
			if cmd != tt.want {
				t.Errorf("MapKey(%q) command = %v, want %v", tt.msg.String(), cmd, tt.want)
			}
			if ctl != ControlNone {
				t.Errorf("MapKey(%q) control = %v, want none", tt.msg.String(), ctl)
			}
		})
	}
}

func TestMapKeyControls(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Control
	}{
		{"q", runeKey('q'), ControlQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ControlQuit},
		{"b", runeKey('b'), ControlBack},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, ControlBack},
		{"r", runeKey('r'), ControlRestart},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, ControlScreenshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ctl := km.MapKey(tt.msg)
			if ctl != tt.want {
				t.Errorf("MapKey(%q) control = %v, want %v", tt.msg.String(), ctl, tt.want)
			}
			if cmd != core.CmdNone {
				t.Errorf("MapKey(%q) command = %v, want none", tt.msg.String(), cmd)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
