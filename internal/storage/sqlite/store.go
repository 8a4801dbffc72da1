package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"projectTracker/internal/logger"
	"projectTracker/internal/storage"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

var _ storage.Store = (*Store)(nil)
var _ storage.Batcher = (*Store)(nil)

// Store хранит значения в таблице kv локального файла SQLite
type Store struct {
	db *sql.DB
}

func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("создание каталога данных: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		logger.Error("Storage: Не удалось открыть SQLite", err, zap.String("path", path))
		return nil, fmt.Errorf("открытие базы: %w", err)
	}
	// один писатель, как и в модели приложения
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		logger.Error("Storage: Не удалось применить схему", err)
		return nil, fmt.Errorf("инициализация схемы: %w", err)
	}

	logger.Info("Storage: SQLite открыт", zap.String("path", path))
	return &Store{db: db}, nil
}

// DefaultPath возвращает путь к базе в каталоге данных XDG
func DefaultPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "project-tracker", "tracker.db"), nil
}

func (s *Store) Close() error {
	logger.Info("Storage: Закрытие SQLite")
	return s.db.Close()
}

func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("проверка соединения: %w: %v", storage.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()

	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		logger.Error("Storage: Не удалось прочитать ключ", err, zap.String("key", key))
		return nil, false, fmt.Errorf("чтение %q: %w: %v", key, storage.ErrUnavailable, err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Storage: Медленный запрос", zap.String("key", key), zap.Duration("ms", time.Since(start)))
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, []storage.Entry{{Key: key, Value: value}})
}

const upsert = `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

// SetMany пишет все ключи в одной транзакции
func (s *Store) SetMany(ctx context.Context, entries []storage.Entry) error {
	start := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("Storage: Не удалось начать транзакцию", err)
		return fmt.Errorf("начало транзакции: %w: %v", storage.ErrUnavailable, err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, upsert, e.Key, e.Value); err != nil {
			logger.Error("Storage: Не удалось записать ключ", err, zap.String("key", e.Key))
			return fmt.Errorf("запись %q: %w: %v", e.Key, storage.ErrUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("Storage: Не удалось зафиксировать транзакцию", err)
		return fmt.Errorf("фиксация транзакции: %w: %v", storage.ErrUnavailable, err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Storage: Медленная операция", zap.Int("keys", len(entries)), zap.Duration("ms", time.Since(start)))
	}
	return nil
}
