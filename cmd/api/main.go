// Command api runs the goaltracker HTTP server.
//
// @title        goaltracker API
// @version      1.0
// @description  Fitness goal tracking service: JWT-authenticated CRUD over personal goals.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/fittrack/goaltracker/docs"
	"github.com/fittrack/goaltracker/internal/api"
	"github.com/fittrack/goaltracker/internal/core/service"
	"github.com/fittrack/goaltracker/internal/infrastructure/config"
	mongodb "github.com/fittrack/goaltracker/internal/infrastructure/db/mongo"
	redisdb "github.com/fittrack/goaltracker/internal/infrastructure/db/redis"
	"github.com/fittrack/goaltracker/internal/infrastructure/queue"
	"github.com/fittrack/goaltracker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; this is the one place stderr is used directly.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unavailable")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	goalRepo := mongodb.NewGoalRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	for _, ensure := range []func(context.Context) error{
		userRepo.EnsureIndexes,
		goalRepo.EnsureIndexes,
		activityRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("index bootstrap failed")
		}
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	// --- Core services & background workers ---
	tokens := service.NewJWTTokenService(cfg.JWTSecret, 0)
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		DB:       db,
		Redis:    rdb,
		Tokens:   tokens,
		Recorder: dispatcher,
		Logger:   log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
