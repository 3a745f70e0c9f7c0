package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DBPath string

	// Auth
	JWTSecret          string
	JWTExpirationHours int
	APIKeyHash         string
	AdminIDs           []int64

	// Game lifecycle
	GameTimeout   time.Duration
	SweepInterval time.Duration
}

func Load() (*Config, error) {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		DBPath:             getEnv("DB_PATH", "truth_dare.db"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		APIKeyHash:         getEnv("API_KEY_HASH", ""),
		AdminIDs:           getEnvInt64List("ADMIN_IDS"),
		GameTimeout:        time.Duration(getEnvInt("GAME_TIMEOUT_SECONDS", 3600)) * time.Second,
		SweepInterval:      time.Duration(getEnvInt("SWEEP_INTERVAL_SECONDS", 300)) * time.Second,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvInt64List(key string) []int64 {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
