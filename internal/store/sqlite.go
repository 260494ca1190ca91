package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLite stores documents in a single-file database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get loads the document stored under key.
func (s *SQLite) Get(ctx context.Context, key string) (*Document, error) {
	var doc Document
	var payload, updatedAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT key, kind, payload, updated_at FROM documents WHERE key = ?`, key,
	).Scan(&doc.Key, &doc.Kind, &payload, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", key, err)
	}

	doc.Payload = []byte(payload)
	doc.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("document %s has a malformed timestamp: %w", key, err)
	}
	return &doc, nil
}

// Set upserts the document under key.
func (s *SQLite) Set(ctx context.Context, key string, doc Document) error {
	doc, err := prepare(key, doc)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (key, kind, payload, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET kind = excluded.kind, payload = excluded.payload, updated_at = excluded.updated_at`,
		doc.Key, doc.Kind, string(doc.Payload), doc.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
