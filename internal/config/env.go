package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings collects the environment-driven knobs shared by the CLI and the server.
type Settings struct {
	DictSource   string // embedded, db or file:<path>
	DictEncoding string
	WebHost      string
	WebPort      int
	CacheSize    int
	Workers      int
	LogLevel     string
	LogJSON      bool
}

// Load reads .env (if present) and returns the resulting settings.
func Load() Settings {
	LoadEnv()
	return Settings{
		DictSource:   GetEnv("STREETDIVIDER_DICT_SOURCE", "embedded"),
		DictEncoding: GetEnv("STREETDIVIDER_DICT_ENCODING", "utf-8"),
		WebHost:      GetEnv("WEB_HOST", "localhost"),
		WebPort:      GetEnvInt("WEB_PORT", 8080),
		CacheSize:    GetEnvInt("PARSE_CACHE_SIZE", 4096),
		Workers:      GetEnvInt("PARSE_WORKERS", 4),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		LogJSON:      GetEnvBool("LOG_JSON", false),
	}
}

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	// Try the current directory first, then parent directories
	envPaths := []string{".env", "../.env", "../../.env"}

	for _, envPath := range envPaths {
		data, err := os.ReadFile(envPath)
		if err != nil {
			continue
		}
		applyEnv(string(data))
		return
	}
}

// applyEnv sets KEY=VALUE pairs that are not already present in the environment.
func applyEnv(data string) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

// GetEnv gets environment variable with default
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets integer environment variable with default
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvBool gets boolean environment variable with default
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}
