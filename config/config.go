// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default configuration values
const (
	DefaultListenAddr    = ":8080"
	DefaultPublicBaseURL = "http://localhost:8080"
	DefaultUploadDir     = "uploads"
	DefaultSMTPPort      = 587
)

// Config holds the runtime configuration for the server and CLI.
type Config struct {
	ListenAddr    string
	PublicBaseURL string

	// Secret used to verify session tokens issued by the identity provider.
	SessionSecret string

	// Directory backing the local blob store.
	UploadDir string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailTo       string
}

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Load builds a Config from environment variables, applying defaults for
// anything unset. Callers are expected to have run godotenv.Load first.
func Load() (*Config, error) {
	dbPort, err := strconv.Atoi(GetEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	smtpPort, err := strconv.Atoi(GetEnv("SMTP_PORT", strconv.Itoa(DefaultSMTPPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	cfg := &Config{
		ListenAddr:    GetEnv("LISTEN_ADDR", DefaultListenAddr),
		PublicBaseURL: GetEnv("PUBLIC_BASE_URL", DefaultPublicBaseURL),
		SessionSecret: GetEnv("SESSION_SECRET", ""),
		UploadDir:     GetEnv("UPLOAD_DIR", DefaultUploadDir),
		DBHost:        GetEnv("DB_HOST", "localhost"),
		DBPort:        dbPort,
		DBUser:        GetEnv("DB_USER", "postgres"),
		DBPassword:    GetEnv("DB_PASSWORD", "postgres"),
		DBName:        GetEnv("DB_NAME", "portal"),
		DBSSLMode:     GetEnv("DB_SSL_MODE", "disable"),
		SMTPHost:      GetEnv("SMTP_HOST", ""),
		SMTPPort:      smtpPort,
		SMTPUser:      GetEnv("SMTP_USER", ""),
		SMTPPassword:  GetEnv("SMTP_PASSWORD", ""),
		MailFrom:      GetEnv("MAIL_FROM", ""),
		MailTo:        GetEnv("MAIL_TO", ""),
	}

	return cfg, nil
}
