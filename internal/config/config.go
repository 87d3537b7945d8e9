package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all process-wide settings. It is built once in main
// and handed to the components that need it; nothing below main reads
// the environment directly.
type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string
	PublicBaseURL  string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisURL string

	JWTSecret string
	TokenTTL  time.Duration

	UploadDir     string
	CloudinaryURL string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: os.Getenv("DB_PASS"),
		DBName: getEnv("DB_NAME", "savora"),

		RedisURL: os.Getenv("REDIS_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv != "development" {
			return nil, fmt.Errorf("JWT_SECRET is required outside development")
		}
		cfg.JWTSecret = "change-me"
	}

	ttl := time.Hour
	if ttlStr := os.Getenv("JWT_TTL_MINUTES"); ttlStr != "" {
		minutes, err := strconv.Atoi(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL_MINUTES: %w", err)
		}
		ttl = time.Duration(minutes) * time.Minute
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

// DatabaseDSN builds the postgres connection string from the DB_* settings.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
