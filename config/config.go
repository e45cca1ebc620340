package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the app reads from the environment.
type Config struct {
	Port            string
	CredentialsPath string
	StorageBucket   string

	// Shared passwords for the two roles plus the cookie lifetime.
	AdminSecret string
	UserSecret  string
	SessionDays int

	// Print behaviour of the report page, sent to the client so the print
	// dialog is a configurable post-load step instead of a hardcoded timer.
	ReportAutoPrint    bool
	ReportPrintDelayMS int
}

// Load reads the .env file (if present) and builds the Config. Secrets and
// session length default to the values the family already uses, so a bare
// deployment keeps working.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, reading from environment variables")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		CredentialsPath:    os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		StorageBucket:      os.Getenv("STORAGE_BUCKET"),
		AdminSecret:        getEnv("ADMIN_SECRET", "admin99"),
		UserSecret:         getEnv("USER_SECRET", "aswier99"),
		SessionDays:        getEnvInt("SESSION_DAYS", 7),
		ReportAutoPrint:    getEnvBool("REPORT_AUTO_PRINT", true),
		ReportPrintDelayMS: getEnvInt("REPORT_PRINT_DELAY_MS", 1000),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid value %q for %s, using %d", v, key, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: invalid value %q for %s, using %v", v, key, fallback)
		return fallback
	}
	return b
}
