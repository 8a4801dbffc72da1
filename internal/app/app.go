package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"projectTracker/internal/config"
	"projectTracker/internal/handlers"
	"projectTracker/internal/logger"
	"projectTracker/internal/repository"
	"projectTracker/internal/service"
	"projectTracker/internal/storage"
	"projectTracker/internal/storage/inmemory"
	"projectTracker/internal/storage/postgres"
	"projectTracker/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	store     storage.Store
	service   *service.Service
	shutdowns []func() // функции для graceful shutdown, вызываются в обратном порядке
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

// Init поднимает логгер, хранилище и сервис. HTTP-сервер создаётся отдельно в InitHTTP.
func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	a.store = store

	repo := repository.New(store, repository.DefaultKeys(a.config.Storage.KeyPrefix))
	a.service = service.New(repo, nil)

	if a.config.Seed.OnStart {
		if _, err := a.service.Seed(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) openStore(ctx context.Context) (storage.Store, error) {
	cfg := a.config.Storage

	switch cfg.Type {
	case config.StorageMemory:
		store := inmemory.New()
		a.shutdowns = append(a.shutdowns, func() { _ = store.Close() })
		logger.Info("Storage: Данные хранятся в памяти")
		return store, nil

	case config.StoragePostgres:
		store, err := postgres.New(ctx, cfg.URL, postgres.PoolConfig{
			MaxConnections: cfg.MaxConnections,
			MinConnections: cfg.MinConnections,
			IdleTimeout:    cfg.IdleTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("подключение к postgres: %w", err)
		}
		a.shutdowns = append(a.shutdowns, func() {
			logger.Info("Закрытие пула postgres...")
			_ = store.Close()
		})
		if err := store.Migrate(); err != nil {
			return nil, fmt.Errorf("миграции postgres: %w", err)
		}
		return store, nil

	default:
		path := cfg.Path
		if path == "" {
			defaultPath, err := sqlite.DefaultPath()
			if err != nil {
				return nil, err
			}
			path = defaultPath
		}
		store, err := sqlite.New(path)
		if err != nil {
			return nil, fmt.Errorf("открытие sqlite: %w", err)
		}
		a.shutdowns = append(a.shutdowns, func() {
			logger.Info("Закрытие sqlite...")
			_ = store.Close()
		})
		logger.Info("Storage: Используется sqlite", zap.String("path", path))
		return store, nil
	}
}

// Service доступен после Init
func (a *App) Service() *service.Service {
	return a.service
}

func (a *App) InitHTTP() {
	h := handlers.New(a.service)
	a.router = handlers.NewRouter(h, handlers.RouterConfig{
		RateLimit:      a.config.Server.RateLimit,
		AllowedOrigins: a.config.Server.AllowedOrigins,
	})
	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}
}

// Run обслуживает HTTP до отмены ctx, затем останавливает сервер
func (a *App) Run(ctx context.Context) error {
	if a.server == nil {
		a.InitHTTP()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP: Сервер запущен", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http сервер: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("HTTP: Остановка сервера...")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("остановка http сервера: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Shutdown освобождает ресурсы в порядке, обратном созданию
func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = nil
}
