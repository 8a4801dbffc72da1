package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"projectTracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, config.StorageSQLite, cfg.Storage.Type)
	assert.Equal(t, "projekty-panel", cfg.Storage.KeyPrefix)
	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddr())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  shutdown_timeout: 3s
storage:
  type: memory
  key_prefix: test
logging:
  development: true
seed:
  on_start: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host, "незаданное поле сохраняет значение по умолчанию")
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Type)
	assert.Equal(t, "test", cfg.Storage.KeyPrefix)
	assert.True(t, cfg.Logging.Development)
	assert.True(t, cfg.Seed.OnStart)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "storage:\n  type: sqlite\n")
	t.Setenv("TRACKER_STORAGE", "postgres")
	t.Setenv("TRACKER_DATABASE_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("TRACKER_PORT", "7000")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.StoragePostgres, cfg.Storage.Type)
	assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.Storage.URL)
	assert.Equal(t, "7000", cfg.Server.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown storage", body: "storage:\n  type: redis\n"},
		{name: "postgres without url", body: "storage:\n  type: postgres\n"},
		{name: "broken yaml", body: "server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
