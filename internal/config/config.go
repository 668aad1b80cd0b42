package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr string
	AppEnv   string

	// MongoDB
	MongoURI      string
	MongoDatabase string

	// Redis (rate limiting; disabled when RedisAddr is empty)
	RedisAddr       string
	RedisPass       string
	RateLimitPerMin int64
	RateLimitWindow time.Duration
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),
		AppEnv:   getEnv("APP_ENV", "development"),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "fleet-rental"),

		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPass:       getEnv("REDIS_PASS", ""),
		RateLimitPerMin: getEnvInt64("RATE_LIMIT_RPM", 120),
		RateLimitWindow: time.Minute,
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
