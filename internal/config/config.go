// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Store       StoreConfig
	AI          AIConfig
	I18n        I18nConfig
	Notify      NotifyConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type StoreConfig struct {
	Driver string // file, sqlite or memory
	Path   string
}

type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout int // in seconds
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

type NotifyConfig struct {
	TTL int // in seconds
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", "file"),
			Path:   getEnv("STORE_PATH", "./data/shahalmix.json"),
		},
		AI: AIConfig{
			APIKey:  getEnv("AI_API_KEY", ""),
			Model:   getEnv("AI_MODEL", "gemini-3-flash-preview"),
			BaseURL: getEnv("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Timeout: getEnvAsInt("AI_TIMEOUT", 20),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
		Notify: NotifyConfig{
			TTL: getEnvAsInt("NOTIFY_TTL", 4),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "file", "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("STORE_PATH is required for the %s driver", c.Store.Driver)
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Notify.TTL <= 0 {
		return fmt.Errorf("NOTIFY_TTL must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
