package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Issuer   string   // Required: expected iss claim of access tokens
	Audience []string // Optional: accepted aud values, comma separated (default: realign)

	JWKS        string        // Optional: inline JWKS document with the issuer's public keys
	JWKSURL     string        // Optional: issuer JWKS endpoint, used when JWKS is empty
	JWKSRefresh time.Duration // Optional: JWKS refresh interval (default: 15m)

	ConsultantDomain     string        // Optional: email domain granted consultant access (default: northpathstrategies.org)
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./realign.db)
	VersionHistory       int           // Optional: versions kept per realignment, 0 keeps all (default: 50)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:      os.Getenv("REALIGN_ISSUER"),
		Audience:    splitList(getEnvOrDefault("REALIGN_AUDIENCE", "realign")),
		JWKS:        os.Getenv("REALIGN_JWKS"),
		JWKSURL:     os.Getenv("REALIGN_JWKS_URL"),
		JWKSRefresh: getEnvDurationOrDefault("REALIGN_JWKS_REFRESH", 15*time.Minute),
		ConsultantDomain: getEnvOrDefault(
			"REALIGN_CONSULTANT_DOMAIN",
			"northpathstrategies.org",
		),
		DatabaseFile:         getEnvOrDefault("REALIGN_DATABASE_FILE", "realign.db"),
		VersionHistory:       getEnvIntOrDefault("REALIGN_VERSION_HISTORY", 50),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "northpath-id" // Default issuer of the NorthPath identity provider
	}

	return cfg
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
