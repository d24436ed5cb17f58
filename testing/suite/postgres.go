package suite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/rocketscienceinc/tictactoe-pro/internal/repository"
	"github.com/rocketscienceinc/tictactoe-pro/internal/repository/storage"
)

const (
	postgresPort     = "5432/tcp"
	postgresImage    = "postgres"
	postgresTag      = "16-alpine"
	postgresPassword = "secret"
	postgresDatabase = "tictactoe"
)

type PostgresSuite struct {
	*testing.T
	Logger *slog.Logger

	Storage *storage.PostgresStorage
	Records repository.RecordStore
}

// NewPostgres starts a throwaway Postgres container with the records table created.
// The test is skipped when no docker daemon is reachable.
func NewPostgres(t *testing.T) (context.Context, *PostgresSuite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool := newPool(t)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDatabase,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start resource: %v", err)
	}

	_ = resource.Expire(expireDuration)

	dsn := fmt.Sprintf("postgres://postgres:%s@%s/%s?sslmode=disable",
		postgresPassword, resource.GetHostPort(postgresPort), postgresDatabase)

	var postgresStorage *storage.PostgresStorage
	if err = pool.Retry(func() error {
		postgresStorage, err = storage.NewPostgresStorage(ctx, dsn)
		return err
	}); err != nil {
		_ = pool.Purge(resource)
		t.Fatalf("could not connect to postgres: %v", err)
	}

	if err = postgresStorage.Init(ctx); err != nil {
		t.Fatalf("could not create records table: %v", err)
	}

	t.Cleanup(func() {
		_ = postgresStorage.Close()

		if err := pool.Purge(resource); err != nil {
			t.Fatalf("could not purge resource: %v", err)
		}
	})

	return ctx, &PostgresSuite{
		T:       t,
		Logger:  logger,
		Storage: postgresStorage,
		Records: repository.NewPostgresRecordStore(postgresStorage.Pool, keyPrefix(t)),
	}
}
