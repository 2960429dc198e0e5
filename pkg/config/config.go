package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultSessionMaxAge = 7 * 24 * time.Hour

type Config struct {
	Port          string
	BaseAPI       string
	SecureCookies bool
	SessionMaxAge time.Duration
	LogLevel      string
	Dev           bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	sessionMaxAge := defaultSessionMaxAge
	if exp := os.Getenv("SESSION_MAX_AGE"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			sessionMaxAge = parsed
		}
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		BaseAPI:       getEnv("BASE_API", "https://muhammadrafi-portfolio-backend.vercel.app/api/v1"),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
		SessionMaxAge: sessionMaxAge,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Dev:           os.Getenv("APP_ENV") != "production",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
