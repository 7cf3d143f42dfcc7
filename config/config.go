package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DevFallbackSecret signs tokens when no secret is configured outside
// production. Tokens signed with it are worthless the moment a real
// secret is set.
const DevFallbackSecret = "fallback-secret-for-dev"

// TokenLifetime is the fixed validity window of issued tokens.
const TokenLifetime = 24 * time.Hour

// Config holds all configuration for the application. It is loaded once
// at startup and passed into constructors; nothing reads the environment
// after that.
type Config struct {
	// Server configuration
	ServerPort  string
	ServerHost  string
	FrontendURL string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// Rate limiting
	RateLimitMax     int
	RateLimitAuthMax int

	// Third-party APIs
	TMDBAPIKey    string
	MistralAPIKey string
	MistralAPIURL string
	MistralModel  string
}

// LoadConfig creates a new Config instance from environment variables.
// A .env file is honored in development.
func LoadConfig() (*Config, error) {
	if !IsProduction() {
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "3000"),
		ServerHost:  getEnv("SERVER_HOST", "0.0.0.0"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "cinedelices"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "cinedelices"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret: os.Getenv("SESSION_SECRET"),

		RateLimitMax:     getEnvInt("RATE_LIMIT_MAX", 200),
		RateLimitAuthMax: getEnvInt("RATE_LIMIT_AUTH_MAX", 20),

		TMDBAPIKey:    os.Getenv("TMDB_API_KEY"),
		MistralAPIKey: os.Getenv("MISTRAL_API_KEY"),
		MistralAPIURL: getEnv("MISTRAL_API_URL", "https://api.mistral.ai/v1/chat/completions"),
		MistralModel:  getEnv("MISTRAL_MODEL", "mistral-small-latest"),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTSecret == "" {
		if IsProduction() {
			return fmt.Errorf("SESSION_SECRET is required in production")
		}
		log.Printf("Warning: SESSION_SECRET not set, using development fallback secret")
		cfg.JWTSecret = DevFallbackSecret
	}
	if IsProduction() && cfg.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required in production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
