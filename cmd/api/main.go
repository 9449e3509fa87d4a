package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/recipecatalog/backend/config"
	"github.com/recipecatalog/backend/internal/database"
	"github.com/recipecatalog/backend/internal/logging"
	"github.com/recipecatalog/backend/internal/middleware"
	"github.com/recipecatalog/backend/internal/server"
	"github.com/recipecatalog/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	recipes, closeStore, err := server.OpenRecipeStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
	opts := server.Options{
		Recipes: recipes,
		Logger:  logger,
		Metrics: metrics,
	}

	if cfg.Auth.JWTSecret != "" {
		opts.Tokens = service.NewTokenService(cfg.Auth.JWTSecret)
	}

	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			// Continue without rate limiting if Redis is not available
			logger.Warn("Redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			if cfg.RateLimit.Enabled {
				opts.RateLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
					Window: cfg.RateLimit.Window,
					Limit:  cfg.RateLimit.Limit,
				}, logger, metrics)
			}
		}
	}

	if cfg.S3.Bucket != "" {
		s3Config, err := config.NewS3Config(ctx, cfg.S3)
		if err != nil {
			return err
		}
		opts.Images = service.NewImageService(s3Config, logger)
	}

	srv := server.New(cfg, opts)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			return err
		}
	case sig := <-quit:
		logger.Info("Received signal", zap.String("signal", sig.String()))
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
