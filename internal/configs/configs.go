package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	RedisChannel           string
	DueSoonWindowHours     int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "curtisos.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		RedisChannel:           getEnv("REDIS_CHANNEL", "curtisos:tasks:updated"),
		DueSoonWindowHours:     getEnvAsInt("DUE_SOON_WINDOW_HOURS", 72),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	// Notifications are off unless a Redis host is configured.
	if redisHost := getEnv("REDIS_HOST", ""); redisHost != "" {
		cfg.RedisAddr = fmt.Sprintf("%s:%s", redisHost, getEnv("REDIS_PORT", "6379"))
	}

	if err := validate(cfg); err != nil {
		log.Fatal(err)
	}
	return cfg
}

func validate(cfg Config) error {
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.DueSoonWindowHours <= 0 {
		return fmt.Errorf("DUE_SOON_WINDOW_HOURS must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.RedisAddr != "" && cfg.RedisChannel == "" {
		return fmt.Errorf("REDIS_CHANNEL must not be empty when REDIS_HOST is set")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
