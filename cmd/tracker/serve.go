package main

import (
	"context"
	"os/signal"
	"syscall"

	"projectTracker/internal/app"
	"projectTracker/internal/config"
	"projectTracker/internal/logger"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if seed {
				cfg.Seed.OnStart = true
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a := app.New(cfg)
			defer a.Shutdown()
			if err := a.Init(ctx); err != nil {
				return err
			}

			if err := a.Run(ctx); err != nil {
				logger.Error("Ошибка сервера", err)
				return err
			}
			logger.Info("Сервер остановлен")
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "заполнить пустое хранилище демо-данными при старте")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Заполнить пустое хранилище демо-данными",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.Seed.OnStart = false

			a := app.New(cfg)
			defer a.Shutdown()
			if err := a.Init(context.Background()); err != nil {
				return err
			}

			seeded, err := a.Service().Seed(cmd.Context())
			if err != nil {
				return err
			}
			if seeded {
				cmd.Println("демо-данные записаны")
			} else {
				cmd.Println("хранилище не пустое, ничего не записано")
			}
			return nil
		},
	}
}
