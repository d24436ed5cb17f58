package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/config"
)

func TestOpenRecordStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: config.StorageMemory}}

		records, closer, err := openRecordStore(ctx, conf)

		require.NoError(t, err)
		require.NoError(t, closer.Close())
		_, err = records.Load(ctx, "ttt_pro_stats")
		assert.ErrorIs(t, err, apperror.ErrRecordNotFound)
	})

	t.Run("SQLite creates the records table", func(t *testing.T) {
		conf := &config.Config{
			Storage:           config.Storage{Driver: config.StorageSQLite, KeyPrefix: "test:"},
			SQLiteStoragePath: filepath.Join(t.TempDir(), "records.db"),
		}

		records, closer, err := openRecordStore(ctx, conf)
		require.NoError(t, err)
		t.Cleanup(func() { _ = closer.Close() })

		require.NoError(t, records.Save(ctx, "ttt_pro_settings", []byte(`{"mode":"pvp"}`)))
		raw, err := records.Load(ctx, "ttt_pro_settings")
		require.NoError(t, err)
		assert.JSONEq(t, `{"mode":"pvp"}`, string(raw))
	})

	t.Run("Redis without host", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: config.StorageRedis}}

		_, _, err := openRecordStore(ctx, conf)

		assert.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Postgres without dsn", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: config.StoragePG}}

		_, _, err := openRecordStore(ctx, conf)

		assert.ErrorIs(t, err, ErrDSNNotFound)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: "mongo"}}

		_, _, err := openRecordStore(ctx, conf)

		assert.ErrorContains(t, err, "unknown storage driver")
	})
}
