package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recipecatalog/backend/internal/model"
)

// RunMigrations creates or updates the recipes table.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running auto-migration", zap.String("dialect", db.Dialector.Name()))
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes: %w", err)
	}
	return nil
}
