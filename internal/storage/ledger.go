// Package storage keeps a ledger of finished runs for the current process.
// The database lives in memory and disappears on exit; nothing is written to disk.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records finished runs in an in-memory SQLite database.
type Ledger struct {
	db *sql.DB
}

// Run is one finished session.
type Run struct {
	ID        int64
	Score     int
	PlayTime  float64 // Seconds spent in Playing
	Kills     int
	CreatedAt time.Time
}

// Summary aggregates every recorded run.
type Summary struct {
	Runs      int
	Best      int
	Kills     int
	TotalTime float64
}

// Open creates an empty in-memory ledger.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Each connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return l, nil
}

// migrate creates the schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			play_time REAL NOT NULL DEFAULT 0,
			kills INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close releases the database. All runs are lost.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and returns its ID.
func (l *Ledger) RecordRun(score int, playTime float64, kills int) (int64, error) {
	result, err := l.db.Exec(
		"INSERT INTO runs (score, play_time, kills) VALUES (?, ?, ?)",
		score, playTime, kills,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns returns the best runs, highest score first.
// Ties go to the earlier run.
func (l *Ledger) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, score, play_time, kills, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.PlayTime, &r.Kills, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Summary aggregates all runs. An empty ledger yields a zero Summary.
func (l *Ledger) Summary() (Summary, error) {
	var (
		s     Summary
		best  sql.NullInt64
		kills sql.NullInt64
		total sql.NullFloat64
	)
	err := l.db.QueryRow(
		"SELECT COUNT(*), MAX(score), SUM(kills), SUM(play_time) FROM runs",
	).Scan(&s.Runs, &best, &kills, &total)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot query summary: %w", err)
	}

	s.Best = int(best.Int64)
	s.Kills = int(kills.Int64)
	s.TotalTime = total.Float64
	return s, nil
}

// parseTime handles both time.Time and string timestamps from the driver.
func parseTime(v any) time.Time {
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
