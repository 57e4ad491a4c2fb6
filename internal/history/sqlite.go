// Package history provides an optional SQLite-backed log of resolution
// outcomes. The resolver itself stays stateless; this is audit-only.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ernestocullari/audience-pathways/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the HistoryStore interface using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite history store. Pass ":memory:" for an
// ephemeral store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath is required")
	}

	if dbPath != ":memory:" && !strings.HasPrefix(dbPath, "file:") {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Migrate creates the resolutions table if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS resolutions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		query TEXT NOT NULL,
		outcome TEXT NOT NULL,
		matched_column TEXT NOT NULL,
		confidence TEXT NOT NULL DEFAULT '',
		top_pathway TEXT NOT NULL DEFAULT '',
		top_score REAL NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_resolutions_created_at ON resolutions(created_at);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate history schema: %w", err)
	}
	return nil
}

// RecordResolution appends one resolution outcome to the log.
func (s *SQLiteStore) RecordResolution(ctx context.Context, entry model.HistoryEntry) error {
	if entry.Query == "" {
		return fmt.Errorf("query is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resolutions (query, outcome, matched_column, confidence, top_pathway, top_score)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Query,
		string(entry.Outcome),
		string(entry.MatchedColumn),
		string(entry.Confidence),
		entry.TopPathway,
		entry.TopScore,
	)
	if err != nil {
		return fmt.Errorf("failed to record resolution: %w", err)
	}
	return nil
}

// ListResolutions returns the most recent resolutions, newest first.
func (s *SQLiteStore) ListResolutions(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, query, outcome, matched_column, confidence, top_pathway, top_score
		FROM resolutions
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query resolutions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		var outcome, column, confidence string
		if err := rows.Scan(&entry.ID, &entry.CreatedAt, &entry.Query, &outcome, &column, &confidence, &entry.TopPathway, &entry.TopScore); err != nil {
			return nil, fmt.Errorf("failed to scan resolution row: %w", err)
		}
		entry.Outcome = model.Outcome(outcome)
		entry.MatchedColumn = model.ColumnRole(column)
		entry.Confidence = model.Confidence(confidence)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
