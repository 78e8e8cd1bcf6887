package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridcade/internal/platform/tui"
	"github.com/vovakirdan/gridcade/internal/registry"
	"github.com/vovakirdan/gridcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play one game",
	Long: `Play a single game. Leaving it exits the program.

Keys:
  arrows, wasd, hjkl   move (tetris: up hard-drops, down soft-drops)
  space, x             rotate
  enter                hard drop
  r                    restart once the run is over
  ctrl+s               save a text screenshot
  b, esc, q, ctrl+c    quit

--difficulty picks easy, normal, hard or fixed (no speed-up).

  arcade play tetris --seed 42
  arcade play breakout --difficulty hard
  arcade play pong --config ./pong.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", id)
	}

	logger, closeLog, err := newLogger("arcade", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(id, registry.Options{ConfigPath: flagConfig, Preset: flagDifficulty})
	if err != nil {
		return err
	}

	store := openScores(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", id, "seed", flagSeed, "difficulty", flagDifficulty)
	return tui.Run(game, store, runtimeConfig(), logger)
}

// openScores opens the --db store for interactive play. Failure is not
// fatal: the player is warned and the games run without a scoreboard.
func openScores(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: scores disabled: %v\n", err)
		logger.Warn("playing without score storage", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}
