package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// --- PostgreSQL Implementation ---

type pgKVStore struct {
	db *sqlx.DB
}

func (s *pgKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	if err := s.db.GetContext(ctx, &value, "SELECT value FROM kv_store WHERE key = $1", key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *pgKVStore) Set(ctx context.Context, key string, value string) error {
	q := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, q, key, value)
	return err
}
