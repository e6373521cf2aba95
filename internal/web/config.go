package web

import (
	"encoding/json"
	"os"
)

// Config represents the web server configuration
type Config struct {
	Server   ServerConfig  `json:"server"`
	Cache    CacheConfig   `json:"cache"`
	Auth     AuthConfig    `json:"auth"`
	Features FeatureConfig `json:"features"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}

// CacheConfig sizes the parse result cache; 0 disables it
type CacheConfig struct {
	Size int `json:"size"`
}

// AuthConfig contains authentication settings
type AuthConfig struct {
	APIKey string `json:"api_key"`
}

// FeatureConfig contains feature toggles and limits
type FeatureConfig struct {
	ReloadEnabled bool `json:"reload_enabled"`
	MaxBatch      int  `json:"max_batch"`
	Workers       int  `json:"workers"`
}

// LoadConfig loads configuration from a JSON file, on top of the defaults
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Cache: CacheConfig{
			Size: 4096,
		},
		Features: FeatureConfig{
			ReloadEnabled: false,
			MaxBatch:      1000,
			Workers:       4,
		},
	}
}
