package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Postgres stores documents in a PostgreSQL table.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and creates the documents
// table if needed.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Get loads the document stored under key.
func (p *Postgres) Get(ctx context.Context, key string) (*Document, error) {
	var doc Document
	var payload []byte
	var updatedAt time.Time

	err := p.pool.QueryRow(ctx,
		`SELECT key, kind, payload, updated_at FROM documents WHERE key = $1`,
		key,
	).Scan(&doc.Key, &doc.Kind, &payload, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", key, err)
	}

	doc.Payload = payload
	doc.UpdatedAt = updatedAt.UTC()
	return &doc, nil
}

// Set upserts the document under key.
func (p *Postgres) Set(ctx context.Context, key string, doc Document) error {
	doc, err := prepare(key, doc)
	if err != nil {
		return err
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO documents (key, kind, payload, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (key) DO UPDATE SET kind = $2, payload = $3, updated_at = $4`,
		doc.Key, doc.Kind, []byte(doc.Payload), doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", key, err)
	}
	return nil
}

// Close closes the connection pool
func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
