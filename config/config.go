package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	StripeSecretKey string

	IdentityURL       string
	IdentityJWTSecret string

	// Navigation paths requiring an authenticated session, and where the
	// guard sends visitors that lack one.
	ProtectedPaths []string
	AuthRedirect   string

	GatewayTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		PostgresUser:      os.Getenv("POSTGRES_USER"),
		PostgresPassword:  os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:        os.Getenv("POSTGRES_DB"),
		PostgresHost:      getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:      getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:   getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone:  getEnv("POSTGRES_TIMEZONE", "UTC"),
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		IdentityURL:       os.Getenv("SUPABASE_URL"),
		IdentityJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		ProtectedPaths:    splitPaths(getEnv("PROTECTED_PATHS", "/checkout,/shoppingcart")),
		AuthRedirect:      getEnv("AUTH_REDIRECT", "/auth"),
	}

	timeoutSecs, err := strconv.Atoi(getEnv("GATEWAY_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSecs <= 0 {
		return nil, fmt.Errorf("invalid GATEWAY_TIMEOUT_SECONDS")
	}
	cfg.GatewayTimeout = time.Duration(timeoutSecs) * time.Second

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" ||
		cfg.StripeSecretKey == "" || cfg.IdentityJWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func splitPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
