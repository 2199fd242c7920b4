package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/broccoflower/catering-api/internal/api"
	"github.com/broccoflower/catering-api/internal/infrastructure/config"
	redisinfra "github.com/broccoflower/catering-api/internal/infrastructure/db/redis"
	"github.com/broccoflower/catering-api/internal/infrastructure/db/sqlite"
	"github.com/broccoflower/catering-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := sqlite.Connect(cfg.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SQLite.Path).Msg("failed to open database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisinfra.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		// the login throttle degrades gracefully without redis
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable at startup")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
