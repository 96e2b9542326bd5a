package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PostgresStore keeps documents in the resume_kv table created by the
// migration package.
type PostgresStore struct {
	pool  *pgxpool.Pool
	quota int
}

func NewPostgresStore(pool *pgxpool.Pool, quota int) *PostgresStore {
	return &PostgresStore{pool: pool, quota: quota}
}

func (r *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM resume_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (r *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if r.quota > 0 {
		var used int64
		if err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(octet_length(value)), 0) FROM resume_kv WHERE key <> $1`, key).Scan(&used); err != nil {
			return err
		}
		if used+int64(len(value)) > int64(r.quota) {
			return ErrQuotaExceeded
		}
	}

	if _, err := tx.Exec(ctx, `INSERT INTO resume_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM resume_kv WHERE key = $1`, key)
	return err
}
