package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridcade/internal/core"
)

// Control is a front end action that never reaches a game engine.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlBack
	ControlRestart
	ControlScreenshot
)

// MenuAction is what a key means on the menu screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// KeyMapper resolves key names, as reported by tea.KeyMsg.String, for the
// game screen and the menus.
type KeyMapper struct {
	controls map[string]Control
	commands map[string]core.Command
	menu     map[string]MenuAction
}

// bind assigns v to every key in keys.
func bind[V any](m map[string]V, v V, keys ...string) {
	for _, k := range keys {
		m[k] = v
	}
}

// NewKeyMapper returns the default bindings: arrows, WASD and hjkl move,
// space or x rotates, enter hard-drops.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		controls: map[string]Control{},
		commands: map[string]core.Command{},
		menu:     map[string]MenuAction{},
	}

	bind(km.controls, ControlQuit, "q", "ctrl+c")
	bind(km.controls, ControlBack, "b", "esc")
	bind(km.controls, ControlRestart, "r")
	bind(km.controls, ControlScreenshot, "ctrl+s")

	bind(km.commands, core.CmdLeft, "left", "a", "h")
	bind(km.commands, core.CmdRight, "right", "d", "l")
	bind(km.commands, core.CmdUp, "up", "w", "k")
	bind(km.commands, core.CmdDown, "down", "s", "j")
	bind(km.commands, core.CmdRotate, " ", "x")
	bind(km.commands, core.CmdHardDrop, "enter")

	bind(km.menu, MenuActionQuit, "q", "ctrl+c")
	bind(km.menu, MenuActionUp, "up", "w", "k")
	bind(km.menu, MenuActionDown, "down", "s", "j")
	bind(km.menu, MenuActionSelect, "enter", " ")
	bind(km.menu, MenuActionBack, "b", "esc")
	bind(km.menu, MenuActionScoreboard, "tab")
	return km
}

// MapKey resolves a key on the game screen. At most one of the results is
// set; unbound keys give CmdNone and ControlNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Command, Control) {
	k := msg.String()
	if c, ok := km.controls[k]; ok {
		return core.CmdNone, c
	}
	return km.commands[k], ControlNone
}

// MapKeyToMenuAction resolves a key on the menu screens.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
