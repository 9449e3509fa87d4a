package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/recipecatalog/backend/config"
	"github.com/recipecatalog/backend/internal/database"
	"github.com/recipecatalog/backend/internal/logging"
)

// migrate prepares the configured store: the recipes table for relational
// drivers, the recipe indexes for MongoDB.
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

	if cfg.Store.Driver == config.DriverMongo {
		// NewMongo ensures the indexes on connect
		client, _, err := database.NewMongo(context.Background(), cfg.Store, logger)
		if err != nil {
			logger.Fatal("Migration failed", zap.Error(err))
		}
		_ = client.Disconnect(context.Background())
		logger.Info("Recipe indexes are up to date")
		return
	}

	db, err := database.New(cfg.Store, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db, logger); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
	logger.Info("Recipes table is up to date")
}
