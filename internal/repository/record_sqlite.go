package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

type sqliteRecords struct {
	conn   *sqlx.DB
	prefix string
}

// NewSQLiteRecordStore expects the records table created by storage.Storage.Init.
func NewSQLiteRecordStore(conn *sqlx.DB, prefix string) RecordStore {
	return &sqliteRecords{
		conn:   conn,
		prefix: prefix,
	}
}

func (that *sqliteRecords) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM records WHERE key = ?`

	var value string

	err := that.conn.GetContext(ctx, &value, query, that.prefix+key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRecordNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("can't load record %s: %w", key, err)
	}

	return []byte(value), nil
}

func (that *sqliteRecords) Save(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := that.conn.ExecContext(ctx, query, that.prefix+key, string(value)); err != nil {
		return fmt.Errorf("can't save record %s: %w", key, err)
	}

	return nil
}
