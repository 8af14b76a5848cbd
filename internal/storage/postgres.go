package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cvmaker/internal/types"
)

// PostgresStore persists the document as a single row keyed by StorageKey.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore establishes a connection pool, verifies it, and ensures
// the documents table exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err = pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS documents (
			key        TEXT PRIMARY KEY,
			content    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Load reads and parses the stored document.
func (p *PostgresStore) Load(ctx context.Context) (types.Resume, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		`SELECT content FROM documents WHERE key = $1`, StorageKey,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Resume{}, ErrNotFound
		}
		return types.Resume{}, fmt.Errorf("failed to read stored resume: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return types.Resume{}, fmt.Errorf("failed to parse stored resume: %w", err)
	}
	return resume, nil
}

// Save upserts the stored document.
func (p *PostgresStore) Save(ctx context.Context, resume types.Resume) error {
	data, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to serialize resume: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO documents (key, content, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()`,
		StorageKey, data,
	)
	if err != nil {
		return fmt.Errorf("failed to write stored resume: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (p *PostgresStore) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
