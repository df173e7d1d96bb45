package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every runtime knob the server reads from the environment.
// It is built once in main and passed down explicitly.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	GinMode  string

	RateLimit       int
	RateLimitWindow time.Duration
}

func Load() *Config {
	cfg := &Config{
		Port:            getEnv("PORT", "8000"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:         getEnv("MONGODB_DB", "skillswap"),
		GinMode:         getEnv("GIN_MODE", ""),
		RateLimit:       getEnvInt("RATE_LIMIT", 60),
		RateLimitWindow: time.Minute,
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
