package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresKV хранит значения в таблице kv_store
type PostgresKV struct {
	pool *pgxpool.Pool
}

func NewPostgresKV(pool *pgxpool.Pool) *PostgresKV {
	return &PostgresKV{pool: pool}
}

// Get получает значение по ключу
func (r *PostgresKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get kv %s: %w", key, err)
	}

	return value, true, nil
}

// Set сохраняет значение, перезаписывая существующее
func (r *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set kv %s: %w", key, err)
	}

	return nil
}

// List получает ключи с префиксом
func (r *PostgresKV) List(ctx context.Context, prefix string) ([]string, error) {
	query := `
		SELECT key
		FROM kv_store
		WHERE starts_with(key, $1)
		ORDER BY key
	`

	rows, err := r.pool.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("list kv: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan kv key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list kv: %w", err)
	}

	return keys, nil
}
