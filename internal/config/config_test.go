package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: every other field falls back to its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
		assert.Equal(t, StorageMemory, conf.Storage.Driver)
		assert.Equal(t, 220*time.Millisecond, conf.AI.MoveDelay)
		assert.Equal(t, 200*time.Millisecond, conf.AI.OpeningDelay)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads every section", func(t *testing.T) {
		path := writeConfig(t, `
http-port: "7000"
storage:
  driver: redis
  key-prefix: "dev:"
redis:
  host: cache
  port: "6380"
ai:
  move-delay: 1s
  opening-delay: 50ms
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7000", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, "dev:", conf.Storage.KeyPrefix)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Second, conf.AI.MoveDelay)
		assert.Equal(t, 50*time.Millisecond, conf.AI.OpeningDelay)
	})

	t.Run("Rejects unknown storage driver", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: mongo\n")

		_, err := Load(path)

		assert.ErrorContains(t, err, "unknown storage driver")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}
