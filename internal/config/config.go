package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Seed    SeedConfig    `yaml:"seed"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" env:"TRACKER_HOST"`
	Port            string        `yaml:"port" env:"TRACKER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"TRACKER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"TRACKER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"TRACKER_SHUTDOWN_TIMEOUT"`
	// запросов в минуту с одного IP, 0 - без ограничения
	RateLimit      int      `yaml:"rate_limit" env:"TRACKER_RATE_LIMIT"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"TRACKER_ALLOWED_ORIGINS"`
}

type StorageConfig struct {
	Type string `yaml:"type" env:"TRACKER_STORAGE"` // memory, sqlite или postgres
	// путь к файлу sqlite, пусто - каталог данных XDG
	Path           string        `yaml:"path" env:"TRACKER_SQLITE_PATH"`
	URL            string        `yaml:"url" env:"TRACKER_DATABASE_URL"`
	MaxConnections int32         `yaml:"max_connections" env:"TRACKER_DB_MAX_CONNECTIONS"`
	MinConnections int32         `yaml:"min_connections" env:"TRACKER_DB_MIN_CONNECTIONS"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env:"TRACKER_DB_IDLE_TIMEOUT"`
	KeyPrefix      string        `yaml:"key_prefix" env:"TRACKER_KEY_PREFIX"`
}

type LoggingConfig struct {
	Development bool `yaml:"development" env:"TRACKER_LOG_DEVELOPMENT"`
}

type SeedConfig struct {
	OnStart bool `yaml:"on_start" env:"TRACKER_SEED_ON_START"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			RateLimit:       300,
		},
		Storage: StorageConfig{
			Type:           StorageSQLite,
			MaxConnections: 10,
			MinConnections: 2,
			IdleTimeout:    5 * time.Minute,
			KeyPrefix:      "projekty-panel",
		},
	}
}

// Load читает yaml-файл поверх значений по умолчанию, затем переменные окружения.
// Отсутствующий файл не ошибка.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
		default:
			defer file.Close()
			if err := yaml.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
			}
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("чтение переменных окружения: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.Storage.URL == "" {
			return errors.New("для postgres нужен storage.url")
		}
	default:
		return fmt.Errorf("неизвестный тип хранилища %q", c.Storage.Type)
	}
	if c.Server.Port == "" {
		return errors.New("не задан server.port")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}
