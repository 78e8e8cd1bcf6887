// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the front ends
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/gridcade/internal/loop"
)

// Game is a grid game that can be driven by a loop.Scheduler.
// Games contain pure rules with no presentation, storage or network code.
type Game interface {
	loop.Engine

	// ID returns a unique identifier for this game (e.g., "tetris", "snake").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Tetris").
	Title() string
}

// Options select how a game is configured when it is created.
type Options struct {
	// ConfigPath is an explicit YAML config file. Empty means the default
	// search order.
	ConfigPath string
	// Preset is a difficulty preset name (easy, normal, hard, fixed).
	// Empty means normal.
	Preset string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func(opts Options) (Game, error)

type entry struct {
	title   string
	factory Factory
}

// ErrUnknownGame is returned by Create for an id nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register makes a game available under id. Games call it from init; a
// second registration of the same id panics.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic("registry: duplicate game " + id)
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

// Create builds a fresh game. Factory errors are wrapped with the id.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	g, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %s: %w", id, err)
	}
	return g, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	_, ok := entries[id]
	mu.RUnlock()
	return ok
}
