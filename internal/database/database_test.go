package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipecatalog/backend/config"
	"github.com/recipecatalog/backend/internal/model"
)

func TestNewSQLiteAndMigrate(t *testing.T) {
	logger := zap.NewNop()
	db, err := New(config.StoreConfig{
		Driver:         config.DriverSQLite,
		SQLitePath:     ":memory:",
		ConnectTimeout: time.Second,
	}, logger)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db, logger))
	assert.True(t, db.Migrator().HasTable(&model.Recipe{}))

	recipe := model.Recipe{Title: "Toast", Ingredients: model.StringList{"bread"}}
	require.NoError(t, db.Create(&recipe).Error)
	assert.NotEmpty(t, recipe.ID)
}

func TestNewRejectsDocumentDriver(t *testing.T) {
	_, err := New(config.StoreConfig{Driver: config.DriverMongo}, zap.NewNop())
	assert.Error(t, err)
}

func TestNewRedisClientInvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), config.RedisConfig{URL: "not-a-url"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse Redis URL")
}
