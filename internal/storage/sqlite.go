// Package storage provides SQLite-based persistence for the minigame play
// ledger: per-session earnings and shop purchases. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
//
// The ledger is an audit trail, not the source of truth; the canonical
// balance lives in the save document. Every write here is best-effort.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/pixelbeasts/petcade/internal/core"
)

// Ledger manages the SQLite database connection.
type Ledger struct {
	db *sql.DB
}

// SessionEntry records one resolved minigame session. Reward is the full
// payload the session emitted; MoneyEarned and Experience are duplicated
// into their own columns so SQL aggregates stay simple.
type SessionEntry struct {
	ID           int64
	GameID       string
	MoneyEarned  int
	Experience   int
	Reward       core.RewardPayload
	DurationSecs int
	CreatedAt    time.Time
}

// GameStats contains aggregated statistics for one minigame.
type GameStats struct {
	GameID       string
	SessionCount int
	TotalEarned  int64
	BestEarned   int
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Ledger, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	ledger := &Ledger{db: db}

	if err := ledger.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return ledger, nil
}

// migrate creates the database schema if it doesn't exist.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			money_earned INTEGER NOT NULL DEFAULT 0,
			experience INTEGER NOT NULL DEFAULT 0,
			reward TEXT NOT NULL DEFAULT '{}',
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);

		CREATE TABLE IF NOT EXISTS purchases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			price INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// RecordSession inserts one resolved session into the ledger.
// Returns the ID of the inserted record.
func (l *Ledger) RecordSession(gameID string, reward core.RewardPayload, durationSecs int) (int64, error) {
	blob, err := json.Marshal(reward)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode reward: %w", err)
	}

	result, err := l.db.Exec(
		"INSERT INTO sessions (game_id, money_earned, experience, reward, duration_secs) VALUES (?, ?, ?, ?, ?)",
		gameID, reward.Money, reward.Experience, string(blob), durationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordPurchase inserts one shop purchase into the ledger.
func (l *Ledger) RecordPurchase(gameID string, price int) (int64, error) {
	result, err := l.db.Exec(
		"INSERT INTO purchases (game_id, price) VALUES (?, ?)",
		gameID, price,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record purchase: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions for a game, newest
// first.
func (l *Ledger) RecentSessions(gameID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, game_id, money_earned, experience, reward, duration_secs, created_at
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var blob string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.MoneyEarned, &e.Experience, &blob, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		// Stored blobs from older builds may miss fields or hold junk;
		// they decode as zero deltas rather than failing the read.
		if reward, decodeErr := core.DecodeReward([]byte(blob)); decodeErr == nil {
			e.Reward = reward
		}
		e.CreatedAt = parseDatetime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestEarned returns the highest single-session earnings for a game.
// Returns 0 if no sessions exist.
func (l *Ledger) BestEarned(gameID string) (int, error) {
	var best sql.NullInt64
	err := l.db.QueryRow(
		"SELECT MAX(money_earned) FROM sessions WHERE game_id = ?",
		gameID,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best earnings: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// Stats retrieves aggregated statistics for one game.
func (l *Ledger) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(money_earned), 0), COALESCE(MAX(money_earned), 0)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.SessionCount, &stats.TotalEarned, &stats.BestEarned)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = l.db.QueryRow(
		`SELECT created_at FROM sessions WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseDatetime(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every game that has been played.
func (l *Ledger) AllStats() (map[string]*GameStats, error) {
	rows, err := l.db.Query(
		`SELECT game_id, COUNT(*), SUM(money_earned), MAX(money_earned), MAX(created_at)
		 FROM sessions
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var s GameStats
		var lastPlayed any
		if err := rows.Scan(&s.GameID, &s.SessionCount, &s.TotalEarned, &s.BestEarned, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		s.LastPlayed = parseDatetime(lastPlayed)
		stats[s.GameID] = &s
	}

	return stats, nil
}

// parseDatetime handles the driver returning either time.Time or string.
func parseDatetime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
