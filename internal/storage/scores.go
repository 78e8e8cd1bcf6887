package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// defaultTopN is used when TopScores gets a non-positive limit.
const defaultTopN = 10

// sqliteTime is how CURRENT_TIMESTAMP comes back when the driver cannot
// see the column type, as with aggregates.
const sqliteTime = "2006-01-02 15:04:05"

const selectRuns = `SELECT id, game_id, run_id, score, level, created_at FROM scores WHERE game_id = ? ORDER BY score DESC, id ASC`

const selectStats = `SELECT game_id, COUNT(*), MAX(score), MAX(level), AVG(score), SUM(score), MAX(created_at) FROM scores`

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	RunID     string
	Score     int
	Level     int
	CreatedAt time.Time
}

// GameStats aggregates every run of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// SaveScore records a finished run and returns its row ID. An empty runID
// is replaced by a fresh UUID and levels below 1 are stored as 1.
func (s *Store) SaveScore(gameID, runID string, score, level int) (int64, error) {
	if runID == "" {
		runID = uuid.NewString()
	}
	res, err := s.db.Exec(`INSERT INTO scores (game_id, run_id, score, level) VALUES (?, ?, ?, ?)`,
		gameID, runID, score, max(1, level))
	if err != nil {
		return 0, fmt.Errorf("storage: save %s score: %w", gameID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: save %s score: %w", gameID, err)
	}
	return id, nil
}

// TopScores returns the best limit runs of a game, highest first. Ties keep
// insertion order.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultTopN
	}
	return s.runs(selectRuns+" LIMIT ?", gameID, limit)
}

// AllScores returns every run of a game in TopScores order.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.runs(selectRuns, gameID)
}

func (s *Store) runs(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.RunID, &e.Score, &e.Level, &created); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		e.CreatedAt = toTime(created)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	return out, nil
}

// HighScore returns the best score of a game, 0 when it was never played.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?`, gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: high score for %s: %w", gameID, err)
	}
	return best, nil
}

// ClearScores deletes every run of a game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	return nil
}

// GetGameStats aggregates one game. A game without runs yields zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	all, err := s.stats(selectStats+" WHERE game_id = ? GROUP BY game_id", gameID)
	if err != nil {
		return nil, err
	}
	if st, ok := all[gameID]; ok {
		return st, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// GetAllGamesStats aggregates every game that has at least one run.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	return s.stats(selectStats + " GROUP BY game_id")
}

func (s *Store) stats(query string, args ...any) (map[string]*GameStats, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*GameStats)
	for rows.Next() {
		var (
			st   GameStats
			last any
		)
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.BestLevel,
			&st.AvgScore, &st.TotalScore, &last); err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		st.LastPlayed = toTime(last)
		out[st.GameID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: query stats: %w", err)
	}
	return out, nil
}

// toTime accepts the timestamp forms the driver returns.
func toTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	case []byte:
		return toTime(string(t))
	}
	return time.Time{}
}
