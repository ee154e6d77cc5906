package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/text/currency"
)

const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	AppEnv   string
	LogLevel string

	APIURL string

	Storage    string
	StorageKey string
	FileDir    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresDSN string

	Currency currency.Unit
}

func Load() (Config, error) {
	cfg := Config{
		AppEnv:        getEnv("APP_ENV", "dev"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		APIURL:        getEnv("CART_API_URL", "http://localhost:3333"),
		Storage:       getEnv("CART_STORAGE", StorageFile),
		StorageKey:    getEnv("CART_STORAGE_KEY", "@RocketShoes:cart"),
		FileDir:       getEnv("CART_FILE_DIR", ".cart"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		PostgresDSN:   getEnv("POSTGRES_DSN", ""),
	}

	code := getEnv("CART_CURRENCY", "BRL")
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Config{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}
	cfg.Currency = unit

	switch cfg.Storage {
	case StorageFile, StorageMemory, StorageRedis:
	case StoragePostgres:
		if cfg.PostgresDSN == "" {
			return Config{}, fmt.Errorf("POSTGRES_DSN is required for %s storage", StoragePostgres)
		}
	default:
		return Config{}, fmt.Errorf("storage[%s] is not supported", cfg.Storage)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
