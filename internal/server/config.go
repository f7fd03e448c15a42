package server

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the HTTP boundary's configuration.
type Config struct {
	Port        int
	Environment string // development, production

	// SessionTTL is how long a loaded workbook stays available after its
	// last use.
	SessionTTL time.Duration
	// MaxUploadBytes caps workbook uploads and cloud downloads.
	MaxUploadBytes int64

	// LoginRateLimit is the number of login attempts allowed per client
	// and session within LoginRateWindow.
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// LoadConfig reads configuration from the environment, optionally loading a
// .env file first. A missing .env file is not an error.
func LoadConfig(envFile string) Config {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found, using environment variables", envFile)
	}

	return Config{
		Port:            getEnvInt("PORT", 8080),
		Environment:     getEnv("ENVIRONMENT", "development"),
		SessionTTL:      getEnvDuration("SESSION_TTL", 30*time.Minute),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", 20<<20)),
		LoginRateLimit:  getEnvInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: getEnvDuration("LOGIN_RATE_WINDOW", time.Minute),
	}
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
		log.Printf("Invalid value for %s: %q, using default %d", key, v, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("Invalid value for %s: %q, using default %s", key, v, fallback)
	}
	return fallback
}
