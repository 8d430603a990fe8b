package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Session  SessionConfig
	Upload   UploadConfig
	Reset    ResetConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// SessionConfig holds session cookie configuration
type SessionConfig struct {
	Secure      bool
	SameSite    string
	Domain      string
	ExpiryHours int
}

// UploadConfig holds document upload configuration
type UploadConfig struct {
	Dir string
}

// ResetConfig holds password reset token configuration
type ResetConfig struct {
	TokenTTLMins int
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Ignore a missing .env file in production
	_ = godotenv.Load()

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	expiryHours, _ := strconv.Atoi(getEnv("SESSION_EXPIRY_HOURS", "24"))
	resetTTL, _ := strconv.Atoi(getEnv("RESET_TOKEN_MINUTES", "60"))
	secure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))

	return &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASS", ""),
			DBName:   getEnv("DB_NAME", "instacash_db"),
		},
		Session: SessionConfig{
			Secure:      secure,
			SameSite:    getEnv("COOKIE_SAMESITE", "lax"),
			Domain:      getEnv("COOKIE_DOMAIN", ""),
			ExpiryHours: expiryHours,
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
		Reset: ResetConfig{
			TokenTTLMins: resetTTL,
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" && c.IsDev() {
		return "*"
	}
	return origins
}
