package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mcoot/connect4-arena/internal/api"
	"github.com/mcoot/connect4-arena/internal/config"
	"github.com/mcoot/connect4-arena/internal/factory"
	"github.com/mcoot/connect4-arena/internal/services/search"
	redisstorage "github.com/mcoot/connect4-arena/internal/storage/redis"
)

func main() {
	env, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	level, err := config.ParseLogLevel(env.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg := factory.Config{
		Logger:      logger,
		StorageType: env.Storage,
		Search: search.Config{
			TimeBudget: env.TimeBudget,
			MaxDepth:   env.MaxDepth,
		},
		Seed: env.Seed,
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = env.RedisURL
		cfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	router := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Storage:    app.Storage,
		Engine:     app.Engine,
		Players:    app.Players,
		Controller: app.Controller,
		Series:     app.Series,
	})

	serverConfig := api.DefaultServerConfig()
	if port, err := strconv.Atoi(env.Port); err == nil {
		serverConfig.Port = port
	} else {
		logger.Warn("invalid port, using default",
			slog.String("port", env.Port),
			slog.Int("default", serverConfig.Port))
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", env.Storage),
		slog.Duration("time_budget", app.Engine.Config().TimeBudget))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
