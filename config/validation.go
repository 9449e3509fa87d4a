package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/recipecatalog/backend/internal/catalog"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig reports every problem with cfg at once.
func ValidateConfig(cfg *Config) error {
	var errs []string
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg}.Error())
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		add("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", cfg.Server.Port))
	}

	switch cfg.Store.Driver {
	case DriverMongo:
		if cfg.Store.MongoURI == "" {
			add("store.mongo_uri", "required for the mongo driver")
		}
		if cfg.Store.MongoDatabase == "" || cfg.Store.MongoCollection == "" {
			add("store.mongo_database", "database and collection names are required")
		}
	case DriverPostgres:
		if cfg.Store.PostgresDSN == "" {
			add("store.postgres_dsn", "required for the postgres driver")
		}
	case DriverSQLite:
		if cfg.Store.SQLitePath == "" {
			add("store.sqlite_path", "required for the sqlite driver")
		}
	default:
		add("store.driver", fmt.Sprintf("unknown driver %q", cfg.Store.Driver))
	}

	if cfg.RateLimit.Enabled {
		if !cfg.Redis.Enabled {
			add("rate_limit.enabled", "rate limiting requires redis.enabled")
		}
		if cfg.RateLimit.Limit <= 0 {
			add("rate_limit.limit", "must be positive")
		}
		if cfg.RateLimit.Window <= 0 {
			add("rate_limit.window", "must be positive")
		}
	}
	if cfg.Redis.Enabled && cfg.Redis.URL == "" {
		add("redis.url", "required when redis is enabled")
	}

	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		add("log.level", err.Error())
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "console" {
		add("log.format", fmt.Sprintf("must be json or console, got %q", cfg.Log.Format))
	}

	if _, err := catalog.ParseCookingTimePolicy(cfg.Catalog.CookingTimePolicy); err != nil {
		add("catalog.cooking_time_policy", err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}
