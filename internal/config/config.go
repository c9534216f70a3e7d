package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/jmcgreevy/mulligan/internal/mail"
)

type Config struct {
	Port         string
	DBPath       string
	SecretKey    string
	CookieSecure bool
	BaseURL      string
	UploadsDir   string
	Mail         mail.Config
}

// Load reads configuration from the environment, preloading a local .env
// file when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "mulligan.db")),
		SecretKey:    getEnv("SECRET_KEY", "change_me_in_production"),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),
		BaseURL:      getEnv("BASE_URL", "http://localhost:8080"),
		UploadsDir:   getEnv("UPLOADS_DIR", filepath.Join("data", "uploads")),
		Mail: mail.Config{
			Host:        getEnv("SMTP_HOST", ""),
			Port:        getEnvInt("SMTP_PORT", 587),
			Username:    getEnv("SMTP_USERNAME", ""),
			Password:    getEnv("SMTP_PASSWORD", ""),
			FromAddress: getEnv("SMTP_FROM", ""),
			FromName:    getEnv("SMTP_FROM_NAME", "Mulligan"),
			UseTLS:      getEnvBool("SMTP_TLS", true),
			InsecureTLS: getEnvBool("SMTP_INSECURE_TLS", false),
		},
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
