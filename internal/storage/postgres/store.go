package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"projectTracker/internal/logger"
	"projectTracker/internal/storage"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

var _ storage.Store = (*Store)(nil)
var _ storage.Batcher = (*Store)(nil)

type PoolConfig struct {
	MaxConnections int32
	MinConnections int32
	IdleTimeout    time.Duration
}

type Store struct {
	pool    *pgxpool.Pool
	connStr string
}

func New(ctx context.Context, connString string, poolCfg PoolConfig) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Error("Storage: Ошибка загрузки конфига", err)
		return nil, fmt.Errorf("загрузка конфига: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnIdleTime = time.Minute * 5
	if poolCfg.MaxConnections > 0 {
		config.MaxConns = poolCfg.MaxConnections
	}
	if poolCfg.MinConnections > 0 {
		config.MinConns = poolCfg.MinConnections
	}
	if poolCfg.IdleTimeout > 0 {
		config.MaxConnIdleTime = poolCfg.IdleTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Storage: Ошибка создания пула", err)
		return nil, fmt.Errorf("создание пула: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("Storage: Неудачная проверка ping", err)
		return nil, fmt.Errorf("проверка соединения ping: %w", err)
	}

	logger.Info("Storage: Успешное создание подключения к PostgreSQL")
	return &Store{pool: pool, connStr: connString}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	logger.Info("Storage: Закрытие всех соединений PostgreSQL")
	return nil
}

func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		logger.Error("Storage: Неудачная проверка ping", err)
		return fmt.Errorf("проверка соединения ping: %w: %v", storage.ErrUnavailable, err)
	}
	return nil
}

// Migrate применяет встроенные миграции через golang-migrate
func (s *Store) Migrate() error {
	logger.Info("Storage: Применение миграций")

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("источник миграций: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(s.connStr))
	if err != nil {
		logger.Error("Storage: Не удалось подготовить миграции", err)
		return fmt.Errorf("подготовка миграций: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("Storage: Ошибка закрытия мигратора", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Error("Storage: Не удалось применить миграции", err)
		return fmt.Errorf("применение миграций: %w", err)
	}

	logger.Info("Storage: Миграции применены")
	return nil
}

// драйвер pgx/v5 в golang-migrate зарегистрирован под схемой pgx5
func migrateURL(connString string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(connString, prefix) {
			return "pgx5://" + strings.TrimPrefix(connString, prefix)
		}
	}
	return connString
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()

	query := `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		logger.Error("Storage: Не удалось прочитать ключ", err, zap.String("key", key), zap.Duration("ms", time.Since(start)))
		return nil, false, fmt.Errorf("чтение %q: %w: %v", key, storage.ErrUnavailable, err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Storage: Медленный запрос", zap.String("key", key), zap.Duration("ms", time.Since(start)))
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, []storage.Entry{{Key: key, Value: value}})
}

func (s *Store) SetMany(ctx context.Context, entries []storage.Entry) error {
	start := time.Now()

	query := `INSERT INTO kv_store (key, value, updated_at)
				VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE
				SET value = EXCLUDED.value,
				updated_at = NOW()`

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, e := range entries {
			if _, err := tx.Exec(ctx, query, e.Key, e.Value); err != nil {
				return fmt.Errorf("запись %q: %w", e.Key, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Storage: Не удалось записать значения", err, zap.Int("keys", len(entries)), zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Storage: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}
