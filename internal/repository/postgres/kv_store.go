package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

type kvStore struct {
	db *sqlx.DB
}

// NewKVStore creates a new PostgreSQL-backed KVStore over the kv_records table.
func NewKVStore(db *sqlx.DB) port.KVStore {
	return &kvStore{db: db}
}

func (s *kvStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value,
		"SELECT value FROM kv_records WHERE key = $1 AND value IS NOT NULL", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("kvStore.Get: %w", err)
	}
	return value, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	query := `INSERT INTO kv_records (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("kvStore.Set: %w", err)
	}
	return nil
}

// Update locks the row for key for the length of a transaction. A placeholder
// row with a NULL value is inserted first so that a missing key can be locked
// too; it is rolled back with everything else if fn fails.
func (s *kvStore) Update(ctx context.Context, key string, fn port.UpdateFunc) (json.RawMessage, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("kvStore.Update begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO kv_records (key, value, updated_at) VALUES ($1, NULL, NOW()) ON CONFLICT (key) DO NOTHING", key)
	if err != nil {
		return nil, fmt.Errorf("kvStore.Update reserve: %w", err)
	}

	var current []byte
	err = tx.GetContext(ctx, &current, "SELECT value FROM kv_records WHERE key = $1 FOR UPDATE", key)
	if err != nil {
		return nil, fmt.Errorf("kvStore.Update lock: %w", err)
	}

	next, err := fn(current)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE kv_records SET value = $2::jsonb, updated_at = NOW() WHERE key = $1", key, string(next))
	if err != nil {
		return nil, fmt.Errorf("kvStore.Update write: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("kvStore.Update commit: %w", err)
	}
	return next, nil
}

func (s *kvStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *kvStore) Close() error {
	return s.db.Close()
}
