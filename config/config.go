package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	// Static bearer token for /api/admin. Empty disables the admin routes.
	AdminToken string `mapstructure:"ADMIN_TOKEN"`

	// Store selection: "mongo" or "postgres".
	StoreDriver  string        `mapstructure:"STORE_DRIVER"`
	QueryTimeout time.Duration `mapstructure:"QUERY_TIMEOUT"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// PostgreSQL configuration.
	PostgresHost     string `mapstructure:"POSTGRES_HOST"`
	PostgresPort     int    `mapstructure:"POSTGRES_PORT"`
	PostgresUser     string `mapstructure:"POSTGRES_USER"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB       string `mapstructure:"POSTGRES_DB"`
	PostgresSSLMode  string `mapstructure:"POSTGRES_SSLMODE"`
	EnableTracing    bool   `mapstructure:"ENABLE_TRACING"`

	// Redis configuration.
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int           `mapstructure:"REDIS_CACHE_DB"`
	CategoryCacheTTL time.Duration `mapstructure:"CATEGORY_CACHE_TTL"`

	// Upper bound on concurrent category lookups in an unscoped search.
	MaxCategoryFanout int `mapstructure:"MAX_CATEGORY_FANOUT"`
}

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, skipping")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ADMIN_TOKEN", "")
	viper.SetDefault("STORE_DRIVER", StoreMongo)
	viper.SetDefault("QUERY_TIMEOUT", 5*time.Second)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "roomcheck")
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "roomcheck")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")
	viper.SetDefault("ENABLE_TRACING", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("CATEGORY_CACHE_TTL", 5*time.Minute)
	viper.SetDefault("MAX_CATEGORY_FANOUT", 8)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
