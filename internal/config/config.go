package config

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	// loads a .env file, when present, before any getEnv call
	_ "github.com/joho/godotenv/autoload"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	ServiceName string
	Env         string
	Port        int
	Storage     string
	DBURL       string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisNamespace string
	RedisTimeout   time.Duration

	OtelEnabled     bool
	OtelEndpoint    string
	OtelSampleRatio float64

	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSMaxAge         time.Duration
	MaxBodyBytes       int64
	RateLimitPerMinute int
	ListCacheTTL       time.Duration
}

func Load() Config {
	return Config{
		ServiceName:        getEnv("SERVICE_NAME", "eventos-api"),
		Env:                getEnv("APP_ENV", "dev"),
		Port:               getEnvInt("PORT", 8080),
		Storage:            storageBackend(getEnv("STORAGE_BACKEND", StorageMemory)),
		DBURL:              buildDBURL(),
		RedisAddr:          getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisNamespace:     getEnv("REDIS_NAMESPACE", "eventos"),
		RedisTimeout:       time.Duration(getEnvInt("REDIS_TIMEOUT_MS", 2000)) * time.Millisecond,
		OtelEnabled:        getEnv("OTEL_ENABLED", "false") == "true",
		OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OtelSampleRatio:    getEnvFloat("OTEL_SAMPLE_RATIO", 1),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		CORSAllowedMethods: splitList(getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")),
		CORSMaxAge:         time.Duration(getEnvInt("CORS_MAX_AGE_SECONDS", 600)) * time.Second,
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 0),
		ListCacheTTL:       time.Duration(getEnvInt("LIST_CACHE_TTL_SECONDS", 5)) * time.Second,
	}
}

func buildDBURL() string {
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "eventos")
	pass := getEnv("DB_PASSWORD", "eventos")
	name := getEnv("DB_NAME", "eventos")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func storageBackend(v string) string {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case StorageMemory, StoragePostgres, StorageRedis:
		return v
	default:
		slog.Warn("unknown STORAGE_BACKEND, using memory", "value", v)
		return StorageMemory
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", fallback)
			return fallback
		}

		return num
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)

		if err != nil {
			slog.Warn("invalid float env var, using default", "key", key, "value", v, "default", fallback)
			return fallback
		}

		return f
	}
	return fallback
}
