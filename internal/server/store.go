package server

import (
	"context"

	"go.uber.org/zap"

	"github.com/recipecatalog/backend/config"
	"github.com/recipecatalog/backend/internal/database"
	"github.com/recipecatalog/backend/internal/service"
)

var runMigrations = database.RunMigrations

// OpenRecipeStore connects the configured store and returns its service
// along with a function releasing the connection.
func OpenRecipeStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.IRecipeService, func(), error) {
	if cfg.Store.Driver == config.DriverMongo {
		client, coll, err := database.NewMongo(ctx, cfg.Store, logger)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Warn("MongoDB disconnect failed", zap.Error(err))
			}
		}
		return service.NewMongoRecipeService(coll, logger), closeFn, nil
	}

	db, err := database.New(cfg.Store, logger)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if err := runMigrations(db, logger); err != nil {
		closeFn()
		return nil, nil, err
	}
	return service.NewRecipeService(db, logger), closeFn, nil
}
