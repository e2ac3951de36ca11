package quota

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists the daily usage record in a single-row SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if needed creates) the quota database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open quota database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate quota database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_usage (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			day TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Usage returns the stored record, or a zero record when the table is empty.
func (s *SQLiteStore) Usage() (Record, error) {
	var r Record
	err := s.db.QueryRow("SELECT day, count FROM daily_usage WHERE id = 1").Scan(&r.Day, &r.Count)
	if err == sql.ErrNoRows {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to read usage record: %w", err)
	}
	return r, nil
}

// SetUsage upserts the single usage record.
func (s *SQLiteStore) SetUsage(r Record) error {
	_, err := s.db.Exec(
		`INSERT INTO daily_usage (id, day, count) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET day = excluded.day, count = excluded.count`,
		r.Day, r.Count,
	)
	if err != nil {
		return fmt.Errorf("failed to write usage record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
