package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Optional: issuer claim for tokens (default: fittrack)
	JWTSecret string // Optional: HS256 signing secret; a random one is generated when unset

	DatabaseFile string // Optional: path to SQLite database file (default: ./tracker.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	AdminUsername string // Optional: seeded admin username when the database is empty (default: admin)
	AdminPassword string // Optional: seeded admin password (default: adminpass)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("TRACKER_ISSUER", "fittrack"),
		JWTSecret:           os.Getenv("TRACKER_JWT_SECRET"),
		DatabaseFile:        getEnvOrDefault("TRACKER_DATABASE_FILE", "tracker.db"),
		PepperFile:          getEnvOrDefault("TRACKER_PEPPER_FILE", "pepper"),
		AdminUsername:       getEnvOrDefault("TRACKER_ADMIN_USERNAME", "admin"),
		AdminPassword:       getEnvOrDefault("TRACKER_ADMIN_PASSWORD", "adminpass"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("TRACKER_PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are taken as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
