// Package score persists match outcomes to SQLite. The simulation never
// reads it during a match; the result screen queries recent history.
package score

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/novakj/ringside/internal/fight"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	winner TEXT NOT NULL,
	loser TEXT NOT NULL,
	winner_health REAL NOT NULL,
	elapsed REAL NOT NULL,
	played_at INTEGER NOT NULL
);
`

// Result is one recorded match.
type Result struct {
	Winner       string
	Loser        string
	WinnerHealth float64
	Elapsed      float64
	PlayedAt     time.Time
}

// Store is a SQLite-backed outcome sink.
type Store struct {
	mu    sync.Mutex
	sqlDB *sql.DB
	err   error // last write error, since MatchEnded cannot return one
}

// Open opens (creating if needed) the store at path. ":memory:" works for
// throwaway stores.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}

// Record inserts one match result. Draws (empty winner) are not stored.
func (s *Store) Record(o fight.Outcome) error {
	if o.Winner == "" {
		return nil
	}
	_, err := s.sqlDB.Exec(
		`INSERT INTO matches (winner, loser, winner_health, elapsed, played_at) VALUES (?, ?, ?, ?, ?)`,
		o.Winner, o.Loser, o.WinnerHealth, o.Elapsed, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// MatchEnded implements fight.OutcomeSink. Write failures are stashed for
// Err since the sink interface is fire-and-forget.
func (s *Store) MatchEnded(o fight.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Record(o); err != nil {
		s.err = err
	}
}

// Err returns the last write error, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Recent returns up to n results, newest first.
func (s *Store) Recent(n int) ([]Result, error) {
	rows, err := s.sqlDB.Query(
		`SELECT winner, loser, winner_health, elapsed, played_at FROM matches ORDER BY played_at DESC, id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var playedAt int64
		if err := rows.Scan(&r.Winner, &r.Loser, &r.WinnerHealth, &r.Elapsed, &playedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		r.PlayedAt = time.UnixMilli(playedAt).UTC()
		results = append(results, r)
	}
	return results, rows.Err()
}
