package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridcade/internal/config"
	"github.com/vovakirdan/gridcade/internal/core"
	"github.com/vovakirdan/gridcade/internal/registry"
	"github.com/vovakirdan/gridcade/internal/storage"
)

var (
	logoStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuItem is one entry of the game list.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
}

// presetChoices are offered after a game is picked, in display order.
var presetChoices = []struct {
	preset config.DifficultyPreset
	hint   string
}{
	{config.DifficultyEasy, "start slow"},
	{config.DifficultyNormal, "default speed curve"},
	{config.DifficultyHard, "start at a higher level"},
	{config.DifficultyFixed, "no speed-up"},
}

type menuStage int

const (
	stageGames menuStage = iota
	stagePresets
)

// cursor is a bounded list position.
type cursor struct {
	pos, n int
}

func (c *cursor) move(delta int) {
	c.pos = core.Clamp(c.pos+delta, 0, max(0, c.n-1))
}

// MenuModel picks a game, then a difficulty for it. Tab leaves for the
// scoreboard; back on the difficulty list returns to the games.
type MenuModel struct {
	items   []MenuItem
	games   cursor
	presets cursor
	stage   menuStage

	width, height int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper

	selected       *MenuItem
	preset         config.DifficultyPreset
	quitting       bool
	openScoreboard bool
}

// NewMenuModel lists the registered games with their best scores. A nil
// store shows no scores.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			item.HighScore, _ = store.HighScore(g.ID)
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		games:     cursor{n: len(items)},
		presets:   cursor{pos: 1, n: len(presetChoices)},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if action == MenuActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if m.stage == stagePresets {
			return m.updatePresets(action)
		}
		return m.updateGames(action)
	}
	return m, nil
}

func (m MenuModel) updateGames(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		m.games.move(-1)
	case MenuActionDown:
		m.games.move(1)
	case MenuActionSelect:
		if len(m.items) > 0 {
			m.stage = stagePresets
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) updatePresets(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		m.presets.move(-1)
	case MenuActionDown:
		m.presets.move(1)
	case MenuActionBack:
		m.stage = stageGames
	case MenuActionSelect:
		item := m.items[m.games.pos]
		m.selected = &item
		m.preset = presetChoices[m.presets.pos].preset
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var (
		heading string
		lines   []string
		hint    string
	)
	switch m.stage {
	case stagePresets:
		heading = m.items[m.games.pos].Title + " - difficulty"
		for i, c := range presetChoices {
			lines = append(lines, menuLine(i == m.presets.pos, fmt.Sprintf("%-8s %s", c.preset, c.hint)))
		}
		hint = "Up/Down: Navigate  |  Enter: Play  |  B/Esc: Back  |  Q: Quit"
	default:
		heading = "Select a game"
		for i, it := range m.items {
			label := fmt.Sprintf("%-10s", it.Title)
			if it.HighScore > 0 {
				label += fmt.Sprintf("  (best %d)", it.HighScore)
			}
			lines = append(lines, menuLine(i == m.games.pos, label))
		}
		hint = "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	}

	var b strings.Builder
	b.WriteString("\n" + centerText(logoStyle.Render("  G R I D C A D E  "), m.width) + "\n\n")
	b.WriteString(centerText(heading, m.width) + "\n\n")
	for _, l := range lines {
		b.WriteString(centerText(l, m.width) + "\n")
	}
	b.WriteString("\n" + centerText(dimStyle.Render(hint), m.width) + "\n")
	return b.String()
}

func menuLine(active bool, label string) string {
	if active {
		return cursorStyle.Render("> " + label)
	}
	return "  " + label
}

// Selected returns the chosen game, or nil before one is chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Preset returns the difficulty chosen together with the selected game.
func (m MenuModel) Preset() config.DifficultyPreset {
	return m.preset
}

func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, including any resize seen by the menu.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text to sit in the middle of width columns.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what RunMenu reports back to the CLI loop.
type MenuResult struct {
	GameID          string
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu full screen until the player picks, quits or asks
// for the scoreboard.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: run menu: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.Selected() == nil:
		res.Quit = true
	default:
		res.GameID = m.Selected().GameID
		res.Preset = m.Preset()
	}
	return res, nil
}
