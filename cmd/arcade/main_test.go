package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gridcade/internal/storage"
)

func TestListShowsRegisteredGames(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)

	runList(listCmd, nil)

	for _, id := range []string{"breakout", "pong", "snake", "tetris"} {
		if !strings.Contains(buf.String(), id) {
			t.Errorf("list output missing %q:\n%s", id, buf.String())
		}
	}
}

func TestScoresPrintsTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore("tetris", "0123456789abcdef", 1200, 3); err != nil {
		t.Fatal(err)
	}
	store.Close()

	oldDB := flagDBPath
	flagDBPath = dbPath
	defer func() { flagDBPath = oldDB }()

	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	defer scoresCmd.SetOut(nil)

	if err := runScores(scoresCmd, []string{"tetris"}); err != nil {
		t.Fatalf("runScores() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"High Scores - Tetris", "1200", "01234567", "Best: 1200"} {
		if !strings.Contains(out, want) {
			t.Errorf("scores output missing %q:\n%s", want, out)
		}
	}
}

func TestScoresUnknownGame(t *testing.T) {
	if err := runScores(scoresCmd, []string{"nope"}); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestDifficultyFlagValidated(t *testing.T) {
	old := flagDifficulty
	defer func() { flagDifficulty = old }()

	flagDifficulty = "insane"
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}

	flagDifficulty = "hard"
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Errorf("hard rejected: %v", err)
	}
}
