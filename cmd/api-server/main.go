package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillswap/database"
	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/logger"
	httpapi "skillswap/internal/microservices/http-api"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.OpenGorm(cfg, appLogger)
	if err != nil {
		appLogger.Error("database_open_failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db, appLogger); err != nil {
		appLogger.Error("database_migrate_failed", "error", err)
		os.Exit(1)
	}

	// Redis only backs the message feed cache; run without it if unreachable
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	redisClient, err := cache.Connect(ctx, cfg.RedisURL, cfg.RedisPassword)
	cancel()
	if err != nil {
		appLogger.Warn("redis_unavailable", "error", err)
		redisClient = nil
	}
	messageCache := cache.NewRedisMessageCache(redisClient, cfg.CacheTTLDuration())
	defer messageCache.Close()

	svc := httpapi.NewServices(db, cfg, appLogger, messageCache)
	router, err := httpapi.NewRouter(cfg, appLogger, db, svc)
	if err != nil {
		appLogger.Error("router_setup_failed", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("http_server_started", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("http_server_failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	appLogger.Info("http_server_stopping")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http_server_shutdown_failed", "error", err)
	}
}
