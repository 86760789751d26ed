package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	_ "github.com/mattn/go-sqlite3"

	"github.com/onair-app/onair-server/internal/domain"
)

// SQLiteArchive implements ArchiveStore using SQLite. The default DSN is
// ":memory:", so the archive lives and dies with the process.
type SQLiteArchive struct {
	db *sql.DB
}

// NewSQLiteArchive creates a new SQLite archive store.
func NewSQLiteArchive(dsn string) (*SQLiteArchive, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	a := &SQLiteArchive{db: db}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return a, nil
}

var _ ArchiveStore = (*SQLiteArchive)(nil)

func (a *SQLiteArchive) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS archive_logs (
			id INTEGER NOT NULL,
			session_id TEXT NOT NULL,
			topic TEXT NOT NULL,
			modality TEXT NOT NULL,
			rounds INTEGER NOT NULL,
			transcript TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_archive_id ON archive_logs(id)`,
	}
	for _, m := range migrations {
		if _, err := a.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Insert appends one completed-session snapshot. A single INSERT, so the
// head of the log moves atomically.
func (a *SQLiteArchive) Insert(ctx context.Context, entry *domain.ArchiveEntry) error {
	transcript, err := sonic.Marshal(entry.Messages)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}
	_, err = a.db.ExecContext(ctx,
		`INSERT INTO archive_logs (id, session_id, topic, modality, rounds, transcript)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.SessionID, entry.Topic, string(entry.Modality), entry.Rounds, string(transcript),
	)
	if err != nil {
		return fmt.Errorf("failed to insert archive entry: %w", err)
	}
	return nil
}

// List returns all entries, most recent first. Entries captured in the same
// millisecond come back in reverse insertion order via rowid.
func (a *SQLiteArchive) List(ctx context.Context) ([]domain.ArchiveEntry, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, session_id, topic, modality, rounds, transcript
		 FROM archive_logs ORDER BY id DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer rows.Close()

	entries := []domain.ArchiveEntry{}
	for rows.Next() {
		var e domain.ArchiveEntry
		var modality, transcript string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Topic, &modality, &e.Rounds, &transcript); err != nil {
			return nil, fmt.Errorf("failed to scan archive entry: %w", err)
		}
		e.Modality = domain.Modality(modality)
		if err := sonic.Unmarshal([]byte(transcript), &e.Messages); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transcript: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}
