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

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Supabase SupabaseConfig
	JWT      JWTConfig
}

// SupabaseConfig holds the upstream Supabase REST API configuration
type SupabaseConfig struct {
	URL    string
	APIKey string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	ExpirationMillis int64
}

// Expiration returns the token lifetime as a duration
func (j JWTConfig) Expiration() time.Duration {
	return time.Duration(j.ExpirationMillis) * time.Millisecond
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	supabaseURL := strings.TrimSpace(getEnv("SUPABASE_URL", ""))
	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	supabaseKey := strings.TrimSpace(getEnv("SUPABASE_APIKEY", ""))
	if supabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_APIKEY is required")
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// Token lifetime in milliseconds, default 24 hours
	rawExpiration := getEnv("JWT_EXPIRATION_MILLIS", "86400000")
	expiration, err := strconv.ParseInt(rawExpiration, 10, 64)
	if err != nil || expiration <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MILLIS: '%s'", rawExpiration)
	}

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "8080"),
		Supabase: SupabaseConfig{
			URL:    supabaseURL,
			APIKey: supabaseKey,
		},
		JWT: JWTConfig{
			Secret:           jwtSecret,
			ExpirationMillis: expiration,
		},
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
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

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://jatriovijog.com"
	}
	return origins
}
