package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string

	// DataFile is the bundled dataset document loaded at startup. A missing
	// or malformed file is not fatal: the embedded seed dataset is used.
	DataFile string

	// The demo apps have no authentication; the social feed acts on behalf
	// of one fixed user.
	CurrentUserID   int
	CurrentUserName string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Dataset document path (default: data.json next to the binary)
	cfg.DataFile = getEnv("DATA_FILE", "data.json")

	// Acting user for the social feed (defaults match the demo pages)
	cfg.CurrentUserID, err = getEnvAsInt("CURRENT_USER_ID", 1)
	if err != nil {
		return nil, fmt.Errorf("invalid CURRENT_USER_ID: %w", err)
	}
	cfg.CurrentUserName = getEnv("CURRENT_USER_NAME", "John Doe")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
