package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Shopify ShopifyConfig
	Redis   RedisConfig
	Session SessionConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// ShopifyConfig configures the Storefront API client. Domain and AccessToken
// come from the environment; when either is empty every remote call is
// disabled (fail-fast, no hardcoded fallback).
type ShopifyConfig struct {
	Domain      string
	AccessToken string
	APIVersion  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Shopify: ShopifyConfig{
			Domain:      getEnv("SHOPIFY_STORE_DOMAIN", ""),
			AccessToken: getEnv("SHOPIFY_STOREFRONT_ACCESS_TOKEN", ""),
			APIVersion:  getEnv("SHOPIFY_API_VERSION", "2023-10"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		Session: SessionConfig{
			Secret:      getEnv("SESSION_SECRET", "your-secret-key"),
			TokenExpiry: parseDuration(getEnv("SESSION_TOKEN_EXPIRY", "24h")),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default 24h", s)
		return 24 * time.Hour
	}
	return duration
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		result = append(result, strings.TrimSpace(p))
	}
	return result
}
