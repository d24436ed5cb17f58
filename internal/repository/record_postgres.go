package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

type postgresRecords struct {
	pool   *pgxpool.Pool
	prefix string
}

// NewPostgresRecordStore expects the records table created by storage.PostgresStorage.Init.
func NewPostgresRecordStore(pool *pgxpool.Pool, prefix string) RecordStore {
	return &postgresRecords{
		pool:   pool,
		prefix: prefix,
	}
}

func (that *postgresRecords) Load(ctx context.Context, key string) ([]byte, error) {
	var value string

	err := that.pool.QueryRow(ctx, "SELECT value FROM records WHERE key = $1", that.prefix+key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRecordNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("can't load record %s: %w", key, err)
	}

	return []byte(value), nil
}

func (that *postgresRecords) Save(ctx context.Context, key string, value []byte) error {
	_, err := that.pool.Exec(ctx,
		"INSERT INTO records (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		that.prefix+key, string(value))
	if err != nil {
		return fmt.Errorf("can't save record %s: %w", key, err)
	}

	return nil
}
