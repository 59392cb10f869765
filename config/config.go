package config

import (
	"bookmarks-api/database"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DBDriver    string
	DBPath      string
	APIPrefix   string
	CORSOrigins string
	LogLevel    string
}

var AppConfig *Config

// Load reads .env (if present) and the process environment into AppConfig.
func Load() error {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// FromEnv builds a Config from the current environment without touching AppConfig.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        GetEnv("PORT", "3000"),
		Env:         GetEnv("ENV", "development"),
		DBDriver:    GetEnv("DB_DRIVER", database.DriverCgo),
		DBPath:      GetEnv("DB_PATH", "./data/bookmarks.db"),
		APIPrefix:   normalizePrefix(GetEnv("API_PREFIX", "/api")),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
	}

	if !database.IsSupportedDriver(cfg.DBDriver) {
		return nil, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", database.DriverCgo, database.DriverPure, cfg.DBDriver)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// normalizePrefix makes "api", "/api/" and "/api" equivalent. "/" becomes "".
func normalizePrefix(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
