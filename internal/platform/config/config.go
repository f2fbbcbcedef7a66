package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ReportCacheNone   = "none"
	ReportCacheMemory = "memory"
	ReportCacheRedis  = "redis"
)

type Config struct {
	Addr                  string
	Environment           string
	LogLevel              string
	LogFormat             string
	MaxBodyBytes          int64
	RateLimitPerMinute    int
	TrustProxy            bool
	MetricsEnabled        bool
	ReportCache           string
	ReportCacheTTL        time.Duration
	ReportCacheMaxEntries int
	RedisAddr             string
	ShutdownTimeout       time.Duration
}

func Load() Config {
	return Config{
		Addr:                  getEnv("APP_ADDR", ":8080"),
		Environment:           getEnv("APP_ENV", "development"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		MaxBodyBytes:          int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute:    getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		TrustProxy:            getEnvBool("TRUST_PROXY", false),
		MetricsEnabled:        getEnvBool("METRICS_ENABLED", true),
		ReportCache:           strings.ToLower(getEnv("REPORT_CACHE", ReportCacheNone)),
		ReportCacheTTL:        getEnvDuration("REPORT_CACHE_TTL", 10*time.Minute),
		ReportCacheMaxEntries: getEnvInt("REPORT_CACHE_MAX_ENTRIES", 256),
		RedisAddr:             getEnv("REDIS_ADDR", ""),
		ShutdownTimeout:       getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text")
	}
	switch c.ReportCache {
	case ReportCacheNone, ReportCacheMemory:
	case ReportCacheRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("REDIS_ADDR must be set when REPORT_CACHE is redis")
		}
	default:
		return fmt.Errorf("REPORT_CACHE must be one of none, memory, redis")
	}
	if c.ReportCache != ReportCacheNone && c.ReportCacheTTL <= 0 {
		return fmt.Errorf("REPORT_CACHE_TTL must be positive")
	}
	return nil
}
