package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the application.
type Config struct {
	Port         int
	DatabasePath string
	CatalogPath  string

	LogLevel  string
	LogFormat string

	// Redis result cache (disabled when RedisAddr is empty)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	CachePrefix   string

	// JWTSecret enables the bearer guard on saved profiles when set.
	JWTSecret string
}

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already present in the environment win.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	port := 8080
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("PORT environment variable is not a valid port: %q", v)
		}
		port = p
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "data/ckd-food-advisor.db"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	switch logFormat {
	case "":
		logFormat = "json"
	case "json", "console":
	default:
		return nil, fmt.Errorf("LOG_FORMAT environment variable must be json or console, got %q", logFormat)
	}

	var redisDB int
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("REDIS_DB environment variable is not a valid database number: %q", v)
		}
		redisDB = n
	}

	cacheTTL := 10 * time.Minute
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("CACHE_TTL environment variable is not a valid duration: %q", v)
		}
		cacheTTL = d
	}

	cachePrefix := os.Getenv("CACHE_PREFIX")
	if cachePrefix == "" {
		cachePrefix = "ckd:analysis:"
	}

	return &Config{
		Port:          port,
		DatabasePath:  dbPath,
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		LogLevel:      logLevel,
		LogFormat:     logFormat,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		CacheTTL:      cacheTTL,
		CachePrefix:   cachePrefix,
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
