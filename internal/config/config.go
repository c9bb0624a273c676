package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values for the import API.
type Config struct {
	Environment        string
	HTTPPort           string
	DatabaseURL        string
	AdminAPIToken      string
	BodyLimit          string
	ImportRateLimitRPM int
	AutoMigrate        bool
	ScryptLogN         uint8
	ScryptR            uint32
	ScryptP            uint32
}

// Load reads configuration from the environment, after loading an optional
// .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	logN := getInt("SCRYPT_LOG_N", 15)
	if logN < 1 || logN > 30 {
		return Config{}, fmt.Errorf("SCRYPT_LOG_N must be between 1 and 30")
	}

	cfg := Config{
		Environment:        getEnv("APP_ENV", "development"),
		HTTPPort:           getEnv("PORT", "8080"),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		AdminAPIToken:      strings.TrimSpace(os.Getenv("ADMIN_API_TOKEN")),
		BodyLimit:          getEnv("BODY_LIMIT", "10M"),
		ImportRateLimitRPM: getInt("IMPORT_RATE_LIMIT_RPM", 30),
		AutoMigrate:        getBool("DB_AUTO_MIGRATE", false),
		ScryptLogN:         uint8(logN),
		ScryptR:            uint32(getInt("SCRYPT_R", 8)),
		ScryptP:            uint32(getInt("SCRYPT_P", 1)),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AdminAPIToken == "" {
		return Config{}, fmt.Errorf("ADMIN_API_TOKEN is required")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
