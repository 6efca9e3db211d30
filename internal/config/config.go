package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	// MongoDB - хранилище жалоб и сводок
	MongoURI string `env:"MONGODB_URI"`
	MongoDB  string `env:"MONGODB_DB" envDefault:"cityfix"`

	// PostgreSQL - профили пользователей
	DatabaseURL             string        `env:"DATABASE_URL"`
	PostgresMaxConns        int           `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	PostgresMinConns        int           `env:"POSTGRES_MIN_CONNS" envDefault:"0"`
	PostgresMaxConnIdleTime time.Duration `env:"POSTGRES_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	PostgresMaxConnLifetime time.Duration `env:"POSTGRES_MAX_CONN_LIFETIME" envDefault:"1h"`
	PostgresPingTimeout     time.Duration `env:"POSTGRES_PING_TIMEOUT" envDefault:"10s"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Identity Config. Если задан AUTH_JWT_SECRET, токены проверяются по HS256 (локальная разработка).
	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID"`
	AuthJWTSecret     string `env:"AUTH_JWT_SECRET"`

	// Storage Config
	StorageProvider  string `env:"STORAGE_PROVIDER" envDefault:"gcs"`
	StorageBucket    string `env:"STORAGE_BUCKET"`
	StoragePrefix    string `env:"STORAGE_PREFIX"`
	StorageRegion    string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	StorageEndpoint  string `env:"STORAGE_ENDPOINT"`
	StoragePublicURL string `env:"STORAGE_PUBLIC_URL"`
	StoragePublicACL bool   `env:"STORAGE_PUBLIC_ACL" envDefault:"true"`
	MaxUploadBytes   int64  `env:"MAX_UPLOAD_BYTES" envDefault:"16777216"`

	// AI Config
	AIProvider          string        `env:"AI_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey        string        `env:"GEMINI_API_KEY"`
	GeminiModel         string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiEmbedModel    string        `env:"GEMINI_EMBEDDING_MODEL" envDefault:"text-embedding-004"`
	AnthropicAPIKey     string        `env:"ANTHROPIC_API_KEY"`
	AnthropicModel      string        `env:"ANTHROPIC_MODEL" envDefault:"claude-sonnet-4-5"`
	AIRequestsPerSecond float64       `env:"AI_RPS" envDefault:"5"`
	AIBurst             int           `env:"AI_BURST" envDefault:"5"`
	EmbeddingCacheTTL   time.Duration `env:"EMBEDDING_CACHE_TTL" envDefault:"24h"`

	// Triage Config
	DuplicateThreshold     float64       `env:"DUPLICATE_THRESHOLD" envDefault:"0.8"`
	DuplicateMaxCandidates int           `env:"DUPLICATE_MAX_CANDIDATES" envDefault:"8"`
	DuplicateRadiusMeters  float64       `env:"DUPLICATE_RADIUS_METERS" envDefault:"100"`
	ImageFetchTimeout      time.Duration `env:"IMAGE_FETCH_TIMEOUT" envDefault:"15s"`

	// Limits & jobs
	ComplaintDailyLimit int           `env:"COMPLAINT_DAILY_LIMIT" envDefault:"10"`
	ComplaintCacheTTL   time.Duration `env:"COMPLAINT_CACHE_TTL" envDefault:"5m"`
	SummaryInterval     time.Duration `env:"SUMMARY_INTERVAL" envDefault:"24h"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		MongoURI:    os.Getenv("MONGODB_URI"),
		MongoDB:     getEnv("MONGODB_DB", "cityfix"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresMaxConns:        getEnvAsInt("POSTGRES_MAX_CONNS", 10),
		PostgresMinConns:        getEnvAsInt("POSTGRES_MIN_CONNS", 0),
		PostgresMaxConnIdleTime: getEnvAsDuration("POSTGRES_MAX_CONN_IDLE_TIME", 5*time.Minute),
		PostgresMaxConnLifetime: getEnvAsDuration("POSTGRES_MAX_CONN_LIFETIME", time.Hour),
		PostgresPingTimeout:     getEnvAsDuration("POSTGRES_PING_TIMEOUT", 10*time.Second),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize: getEnvAsInt("REDIS_POOL_SIZE", 10),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),

		FirebaseProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
		AuthJWTSecret:     os.Getenv("AUTH_JWT_SECRET"),

		StorageProvider:  strings.ToLower(getEnv("STORAGE_PROVIDER", "gcs")),
		StorageBucket:    os.Getenv("STORAGE_BUCKET"),
		StoragePrefix:    os.Getenv("STORAGE_PREFIX"),
		StorageRegion:    getEnv("STORAGE_REGION", "us-east-1"),
		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StoragePublicURL: os.Getenv("STORAGE_PUBLIC_URL"),
		StoragePublicACL: getEnvAsBool("STORAGE_PUBLIC_ACL", true),
		MaxUploadBytes:   int64(getEnvAsInt("MAX_UPLOAD_BYTES", 16<<20)),

		AIProvider:          strings.ToLower(getEnv("AI_PROVIDER", "gemini")),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiEmbedModel:    getEnv("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),
		AnthropicAPIKey:     os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:      getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		AIRequestsPerSecond: getEnvAsFloat("AI_RPS", 5),
		AIBurst:             getEnvAsInt("AI_BURST", 5),
		EmbeddingCacheTTL:   getEnvAsDuration("EMBEDDING_CACHE_TTL", 24*time.Hour),

		DuplicateThreshold:     getEnvAsFloat("DUPLICATE_THRESHOLD", 0.8),
		DuplicateMaxCandidates: getEnvAsInt("DUPLICATE_MAX_CANDIDATES", 8),
		DuplicateRadiusMeters:  getEnvAsFloat("DUPLICATE_RADIUS_METERS", 100),
		ImageFetchTimeout:      getEnvAsDuration("IMAGE_FETCH_TIMEOUT", 15*time.Second),

		ComplaintDailyLimit: getEnvAsInt("COMPLAINT_DAILY_LIMIT", 10),
		ComplaintCacheTTL:   getEnvAsDuration("COMPLAINT_CACHE_TTL", 5*time.Minute),
		SummaryInterval:     getEnvAsDuration("SUMMARY_INTERVAL", 24*time.Hour),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate проверяет обязательные параметры, без которых сервис не может стартовать
func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI environment variable is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.FirebaseProjectID == "" && c.AuthJWTSecret == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID or AUTH_JWT_SECRET environment variable is required")
	}
	if c.StorageBucket == "" {
		return fmt.Errorf("STORAGE_BUCKET environment variable is required")
	}
	switch c.StorageProvider {
	case "gcs", "s3":
	default:
		return fmt.Errorf("unsupported STORAGE_PROVIDER %q", c.StorageProvider)
	}
	switch c.AIProvider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable is required for AI_PROVIDER=gemini")
		}
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable is required for AI_PROVIDER=anthropic")
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AIProvider)
	}
	if c.DuplicateThreshold < 0 || c.DuplicateThreshold > 1 {
		return fmt.Errorf("DUPLICATE_THRESHOLD must be within [0, 1], got %v", c.DuplicateThreshold)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
