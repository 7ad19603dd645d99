package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkpost/blog-platform/internal/api"
	"github.com/inkpost/blog-platform/internal/infrastructure/db/mongo"
	"github.com/inkpost/blog-platform/internal/infrastructure/db/redis"
	"github.com/inkpost/blog-platform/internal/infrastructure/media"
	"github.com/inkpost/blog-platform/internal/pkg/config"
	"github.com/inkpost/blog-platform/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	client, db, err := mongo.ConnectWithRetry(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	}, cfg.Mongo.ConnectAttempts, time.Duration(cfg.Mongo.ConnectDelaySecs)*time.Second, log)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unavailable")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("create user indexes")
	}
	if err := mongo.NewBlogRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("create blog indexes")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}

	mediaStore, err := media.NewS3Store(ctx, media.Config{
		Region:   cfg.Media.Region,
		Bucket:   cfg.Media.Bucket,
		Endpoint: cfg.Media.Endpoint,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("media store init")
	}

	e := api.NewRouter(db, rdb, mediaStore, cfg.JWTSecret, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server running")

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
}
