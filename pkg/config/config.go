package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	GitHub   GitHubConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type GitHubConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables.
// It fails when JWT_SECRET is missing or TOKEN_EXPIRES_IN is malformed,
// so a misconfigured server never starts.
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("missing required env var: JWT_SECRET")
	}

	expiresIn, err := ParseExpiry(getEnv("TOKEN_EXPIRES_IN", "1h"))
	if err != nil {
		return err
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./miniactivity.db"),
		},
		JWT: JWTConfig{
			Secret:    secret,
			ExpiresIn: expiresIn,
		},
		GitHub: GitHubConfig{
			ClientID:     getEnv("GITHUB_CLIENT_ID", ""),
			ClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			CallbackURL:  getEnv("GITHUB_CALLBACK_URL", ""),
		},
	}

	return nil
}

// ParseExpiry parses token expiry strings like "3600s", "30m", "1h" or "2d".
func ParseExpiry(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("invalid TOKEN_EXPIRES_IN format, use like \"3600s\", \"1h\", \"30m\"")
	}

	// time.ParseDuration has no day unit
	if strings.HasSuffix(raw, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
		if err != nil || days <= 0 {
			return 0, fmt.Errorf("invalid TOKEN_EXPIRES_IN format: %q", raw)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid TOKEN_EXPIRES_IN format: %q", raw)
	}
	return d, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
