package config

import (
	"os"
	"strconv"
)

// Config holds the environment configuration for the demo app.
type Config struct {
	// Stage is the deployment stage ("development" or "production").
	Stage string
	// BackendBaseURL is the base URL of the demo app server.
	BackendBaseURL string
	// SDKEnv selects the signing SDK environment (e.g. "sandbox", "production").
	SDKEnv string
	// LocalStorePath is the path of the local key-value store file.
	LocalStorePath string
	// AutomateInitialization runs login/device assignment automatically at startup.
	AutomateInitialization bool
}

// Load reads the configuration from environment variables, applying defaults
// for anything unset.
func Load() Config {
	return Config{
		Stage:                  getEnvWithDefault("APP_STAGE", "development"),
		BackendBaseURL:         getEnvWithDefault("BACKEND_BASE_URL", "http://localhost:3000"),
		SDKEnv:                 getEnvWithDefault("NCW_SDK_ENV", "sandbox"),
		LocalStorePath:         getEnvWithDefault("LOCAL_STORE_PATH", "demoapp.db"),
		AutomateInitialization: getEnvBool("AUTOMATE_INITIALIZATION", false),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}
