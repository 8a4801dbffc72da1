package app_test

import (
	"context"
	"testing"

	"projectTracker/internal/app"
	"projectTracker/internal/config"
	"projectTracker/internal/models/project"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_InitMemoryWithSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Type = config.StorageMemory
	cfg.Seed.OnStart = true

	a := app.New(cfg)
	require.NoError(t, a.Init(context.Background()))
	defer a.Shutdown()

	projects, err := a.Service().ListProjects(context.Background(), project.AllGroups())
	require.NoError(t, err)
	assert.NotEmpty(t, projects)
}

func TestApp_InitSQLite(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Path = t.TempDir() + "/tracker.db"

	a := app.New(cfg)
	require.NoError(t, a.Init(context.Background()))
	defer a.Shutdown()

	assert.NoError(t, a.Service().HealthCheck(context.Background()))
}
