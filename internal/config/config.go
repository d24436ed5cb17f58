package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
	StoragePG     = "postgres"
	StorageMemory = "memory"
)

type Config struct {
	LogLevel          string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Storage           Storage  `yaml:"storage"`
	Redis             Redis    `yaml:"redis"`
	Postgres          Postgres `yaml:"postgres"`
	SQLiteStoragePath string   `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"tictactoe.db"`
	AI                AI       `yaml:"ai"`
}

type Storage struct {
	Driver    string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	KeyPrefix string `yaml:"key-prefix" env:"STORAGE_KEY_PREFIX" env-default:""`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Postgres struct {
	DSN string `yaml:"dsn" env:"POSTGRES_DSN" env-default:""`
}

type AI struct {
	MoveDelay    time.Duration `yaml:"move-delay" env:"AI_MOVE_DELAY" env-default:"220ms"`
	OpeningDelay time.Duration `yaml:"opening-delay" env:"AI_OPENING_DELAY" env-default:"200ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Storage.Driver {
	case StorageRedis, StorageSQLite, StoragePG, StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", that.Storage.Driver)
	}

	if that.AI.MoveDelay < 0 || that.AI.OpeningDelay < 0 {
		return fmt.Errorf("ai delays must not be negative")
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
