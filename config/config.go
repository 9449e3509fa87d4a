package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Env       Environment     `mapstructure:"-"`
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Auth      AuthConfig      `mapstructure:"auth"`
	S3        S3Settings      `mapstructure:"s3"`
	Log       LogConfig       `mapstructure:"log"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Client    ClientConfig    `mapstructure:"client"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StoreConfig selects and configures the recipe store.
type StoreConfig struct {
	Driver          string        `mapstructure:"driver"`
	MongoURI        string        `mapstructure:"mongo_uri"`
	MongoDatabase   string        `mapstructure:"mongo_database"`
	MongoCollection string        `mapstructure:"mongo_collection"`
	PostgresDSN     string        `mapstructure:"postgres_dsn"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
}

// RedisConfig configures the Redis client used for rate limiting.
type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// RateLimitConfig bounds write requests per client.
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// AuthConfig holds the secret shared with the identity provider. When empty,
// bearer tokens are ignored.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// S3Settings configures recipe image uploads. Uploads are disabled without a bucket.
type S3Settings struct {
	Bucket string `mapstructure:"bucket"`
	Region string `mapstructure:"region"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CatalogConfig holds client-side browsing defaults.
type CatalogConfig struct {
	CookingTimePolicy string `mapstructure:"cooking_time_policy"`
}

// ClientConfig configures the API client used by recipectl.
type ClientConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// envAliases maps config keys to the conventional variable names accepted in
// addition to the automatic SECTION_KEY form.
var envAliases = map[string][]string{
	"server.port":        {"SERVER_PORT", "PORT"},
	"store.mongo_uri":    {"STORE_MONGO_URI", "MONGODB_URI", "MONGO_URI"},
	"store.postgres_dsn": {"STORE_POSTGRES_DSN", "DATABASE_URL"},
	"redis.url":          {"REDIS_URL"},
	"auth.jwt_secret":    {"AUTH_JWT_SECRET", "JWT_SECRET"},
	"s3.bucket":          {"S3_BUCKET", "S3_BUCKET_NAME"},
	"s3.region":          {"S3_REGION", "AWS_REGION"},
	"log.level":          {"LOG_LEVEL"},
	"client.base_url":    {"CLIENT_BASE_URL", "RECIPE_API_URL"},
}

// LoadConfig reads .env (if present), the environment and defaults, then validates.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	env := GetEnvironment()
	v := viper.New()
	setDefaults(v, env)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Env = env

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, env Environment) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("store.mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("store.mongo_database", "recipes")
	v.SetDefault("store.mongo_collection", "recipes")
	v.SetDefault("store.postgres_dsn", "")
	v.SetDefault("store.sqlite_path", "recipes.db")
	v.SetDefault("store.connect_timeout", "10s")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.url", "redis://localhost:6379/0")

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.limit", 60)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "us-east-1")

	v.SetDefault("log.level", "info")
	if env == Production {
		v.SetDefault("log.format", "json")
	} else {
		v.SetDefault("log.format", "console")
	}

	v.SetDefault("catalog.cooking_time_policy", "strict")

	v.SetDefault("client.base_url", "http://localhost:5000")
	v.SetDefault("client.timeout", "10s")
}
