// Package tui provides the Bubble Tea front end for the arcade. A game
// runs on its own loop.Scheduler and the model only renders the frames the
// scheduler publishes and forwards commands to it.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridcade/internal/core"
	"github.com/vovakirdan/gridcade/internal/loop"
	"github.com/vovakirdan/gridcade/internal/registry"
	"github.com/vovakirdan/gridcade/internal/storage"
)

// FrameMsg carries a frame published by the scheduler.
type FrameMsg loop.Frame

// frameFeed hands frames from the scheduler goroutine to Bubble Tea.
// Only the latest frame is kept; a slow renderer skips frames instead of
// stalling the game clock.
type frameFeed struct {
	frames chan loop.Frame
	done   chan struct{}
	once   sync.Once
}

func newFrameFeed() *frameFeed {
	return &frameFeed{
		frames: make(chan loop.Frame, 1),
		done:   make(chan struct{}),
	}
}

func (f *frameFeed) push(fr loop.Frame) {
	for {
		select {
		case f.frames <- fr:
			return
		default:
		}
		select {
		case <-f.frames:
		default:
		}
	}
}

func (f *frameFeed) close() {
	f.once.Do(func() { close(f.done) })
}

// wait returns a command that blocks until the next frame arrives.
func (f *frameFeed) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case fr := <-f.frames:
			return FrameMsg(fr)
		case <-f.done:
			return nil
		}
	}
}

// GameModel is the Bubble Tea model for a single game.
type GameModel struct {
	game   registry.Game
	sched  *loop.Scheduler
	feed   *frameFeed
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	keys   *KeyMapper

	// standalone quits the program on back instead of returning to a menu.
	standalone bool

	frame      loop.Frame
	quitting   bool
	backToMenu bool
}

// scoreKeeper records finished runs. It is fed by the scheduler's game over
// callback, so a result is stored even when a restart replaces the game
// over frame before the view has drawn it.
type scoreKeeper struct {
	game   string
	store  *storage.Store
	logger *log.Logger

	mu    sync.Mutex
	saved map[string]bool // run IDs already written
}

func (k *scoreKeeper) record(f loop.Frame) {
	if k.store == nil || f.Score <= 0 {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.saved[f.RunID] {
		return
	}
	k.saved[f.RunID] = true

	if _, err := k.store.SaveScore(k.game, f.RunID, f.Score, f.Level); err != nil {
		k.logger.Error("could not save score", "game", k.game, "run", f.RunID, "err", err)
		return
	}
	k.logger.Debug("score saved", "game", k.game, "run", f.RunID, "score", f.Score, "level", f.Level)
}

// NewGameModel creates a model that drives game with its own scheduler.
// A zero cfg.Seed picks a time based seed for every run.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	feed := newFrameFeed()
	keeper := &scoreKeeper{game: game.ID(), store: store, logger: logger, saved: map[string]bool{}}

	return GameModel{
		game: game,
		sched: loop.NewScheduler(game.ID(), game,
			loop.WithLogger(logger),
			loop.OnFrame(feed.push),
			loop.OnGameOver(keeper.record),
		),
		feed:   feed,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		frame:  game.Frame(),
	}
}

func (m GameModel) seed() int64 {
	if m.config.Seed != 0 {
		return m.config.Seed
	}
	return time.Now().UnixNano()
}

// Init starts the first run.
func (m GameModel) Init() tea.Cmd {
	m.sched.Start(m.seed())
	return m.feed.wait()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(loop.Frame(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ctl := m.keys.MapKey(msg)

	switch ctl {
	case ControlQuit:
		m.shutdown()
		m.quitting = true
		return m, tea.Quit
	case ControlBack:
		m.shutdown()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case ControlRestart:
		if m.sched.State() != loop.StateRunning {
			m.sched.Start(m.seed())
		}
		return m, nil
	case ControlScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	m.sched.Send(cmd)
	return m, nil
}

// handleFrame stores the latest frame and waits for the next one.
func (m GameModel) handleFrame(f loop.Frame) (tea.Model, tea.Cmd) {
	m.frame = f
	return m, m.feed.wait()
}

// stopWith shuts the game down when ctx ends. It returns as soon as the
// game has been shut down for any reason.
func (m GameModel) stopWith(ctx context.Context) {
	select {
	case <-ctx.Done():
		m.shutdown()
	case <-m.feed.done:
	}
}

// shutdown stops the scheduler and releases the pending frame wait.
func (m GameModel) shutdown() {
	m.sched.Stop()
	m.feed.close()
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	DrawFrame(m.screen, m.frame)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	DrawFrame(m.screen, m.frame)
	return RenderScreen(m.screen)
}

// Frame returns the most recent frame received from the scheduler.
func (m GameModel) Frame() loop.Frame {
	return m.frame
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(GameModel); ok {
		m.shutdown()
	}
	if err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	return nil
}
