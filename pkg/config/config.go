package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	TokenSecret string
	TokenExpiry time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		log.Fatal("TOKEN_SECRET is not set; refusing to sign tokens with an empty key")
	}

	tokenExpiry := 72 * time.Hour // 3 days
	if exp := os.Getenv("TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			tokenExpiry = parsed
		}
	}

	return &Config{
		Port:        getEnv("PORT", "7000"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=medagenda port=5432 sslmode=disable"),
		TokenSecret: secret,
		TokenExpiry: tokenExpiry,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
