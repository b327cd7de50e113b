package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Server captures configuration for the accounts HTTP service.
type Server struct {
	Addr            string
	Environment     string
	LogLevel        string
	ShutdownTimeout time.Duration

	Cards     CardsConfig
	Discovery DiscoveryConfig
	Database  DatabaseConfig
	Redis     RedisConfig
}

// CardsConfig configures the outbound cards client.
type CardsConfig struct {
	ServiceName string
	Path        string
	// HTTPTimeout bounds the transport used by the client. Zero leaves calls
	// bounded only by the caller's context.
	HTTPTimeout time.Duration
}

// DiscoveryConfig selects how logical service names are resolved.
type DiscoveryConfig struct {
	// ServiceURLs is a "name=url,name=url" list for the static resolver.
	ServiceURLs string
	// RegistryKeyPrefix namespaces service entries when resolving through Redis.
	RegistryKeyPrefix string
}

// DatabaseConfig is empty-URL-disabled; the memory account store is used instead.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig is empty-URL-disabled; the static resolver is used instead.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Defaults.
var (
	DefaultAddr            = ":8080"
	DefaultServiceURLs     = "cards=http://localhost:9000"
	DefaultShutdownTimeout = 10 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:            getEnv("ACCOUNTS_ADDR", DefaultAddr),
		Environment:     getEnv("ENVIRONMENT", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: DefaultShutdownTimeout,
		Cards: CardsConfig{
			ServiceName: getEnv("CARDS_SERVICE_NAME", "cards"),
			Path:        getEnv("CARDS_PATH", "myCards"),
		},
		Discovery: DiscoveryConfig{
			ServiceURLs:       getEnv("SERVICE_URLS", DefaultServiceURLs),
			RegistryKeyPrefix: getEnv("DISCOVERY_KEY_PREFIX", "services:"),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}

	var err error
	if cfg.Cards.HTTPTimeout, err = durationEnv("CARDS_HTTP_TIMEOUT", 0); err != nil {
		return Server{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout); err != nil {
		return Server{}, err
	}
	if cfg.Database.MaxOpenConns, err = intEnv("DATABASE_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns); err != nil {
		return Server{}, err
	}
	if cfg.Redis.PoolSize, err = intEnv("REDIS_POOL_SIZE", cfg.Redis.PoolSize); err != nil {
		return Server{}, err
	}
	if cfg.Cards.HTTPTimeout < 0 {
		return Server{}, fmt.Errorf("CARDS_HTTP_TIMEOUT must not be negative")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
