package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridcade/internal/platform/tui"
	"github.com/vovakirdan/gridcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse games, difficulties and high scores",
	Long: `Open the arcade menu. Pick a game and a difficulty; leaving the game
brings you back here.

Menu keys: up/down or j/k move, enter selects, tab shows high scores,
b/esc goes back, q quits.

--difficulty, when set, replaces the preset picked in the menu.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("arcade", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openScores(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil || !back {
				return err
			}

		default:
			preset := string(res.Preset)
			if flagDifficulty != "" {
				preset = flagDifficulty
			}
			game, err := registry.Create(res.GameID, registry.Options{ConfigPath: flagConfig, Preset: preset})
			if err != nil {
				fmt.Fprintf(os.Stderr, "cannot start %s: %v\n", res.GameID, err)
				logger.Error("could not create game", "game", res.GameID, "err", err)
				continue
			}

			logger.Info("starting game", "game", res.GameID, "difficulty", preset)
			if err := tui.Run(game, store, cfg, logger); err != nil {
				return err
			}
		}
	}
}
