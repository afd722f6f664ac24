package config

import (
	"os"

	"github.com/joho/godotenv"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	// required settings, fail fast when missing
	dbDSN := os.Getenv("DB_DSN")
	if dbDSN == "" {
		Logger.Fatal("DB_DSN is not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		Logger.Fatal("REDIS_ADDR is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}

	directoryURL := os.Getenv("DIRECTORY_BASE_URL")
	if directoryURL == "" {
		Logger.Fatal("DIRECTORY_BASE_URL is not set")
	}
}
