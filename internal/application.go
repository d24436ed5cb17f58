package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-pro/internal/config"
	"github.com/rocketscienceinc/tictactoe-pro/internal/repository"
	"github.com/rocketscienceinc/tictactoe-pro/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-pro/internal/service"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-pro/transport/rest"
	"github.com/rocketscienceinc/tictactoe-pro/transport/websocket"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrDSNNotFound  = errors.New("postgres dsn is empty")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	records, closer, err := openRecordStore(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closer.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	profileRepo := repository.NewProfileRepository(records)
	progression := service.NewProgressionService(ctx, logger.With("component", "progression"), profileRepo)
	bot := service.NewBotService(rand.New(rand.NewSource(time.Now().UnixNano())))
	hub := websocket.NewHub(logger)

	gameManager := usecase.NewGameManager(
		ctx,
		logger.With("component", "game"),
		profileRepo,
		progression,
		bot,
		usecase.NewTimeScheduler(),
		hub,
		usecase.Delays{Move: conf.AI.MoveDelay, Opening: conf.AI.OpeningDelay},
	)
	defer gameManager.Close()

	gameManager.NewGame(ctx)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, logger, conf.HTTPPort, rest.NewHandlers(logger, gameManager)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager, hub)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openRecordStore connects the configured storage driver.
func openRecordStore(ctx context.Context, conf *config.Config) (repository.RecordStore, io.Closer, error) {
	switch conf.Storage.Driver {
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisRecordStore(redisStorage.Connection, conf.Storage.KeyPrefix), redisStorage, nil
	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteRecordStore(sqliteStorage.Connection, conf.Storage.KeyPrefix), sqliteStorage, nil
	case config.StoragePG:
		if conf.Postgres.DSN == "" {
			return nil, nil, ErrDSNNotFound
		}

		postgresStorage, err := storage.NewPostgresStorage(ctx, conf.Postgres.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to postgres storage: %w", err)
		}

		if err = postgresStorage.Init(ctx); err != nil {
			_ = postgresStorage.Close()
			return nil, nil, fmt.Errorf("could not init postgres storage: %w", err)
		}

		return repository.NewPostgresRecordStore(postgresStorage.Pool, conf.Storage.KeyPrefix), postgresStorage, nil
	case config.StorageMemory:
		return repository.NewMemoryRecordStore(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
