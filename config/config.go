package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const VERSION = "1.2"

type Config struct {
	Server       ServerConfig
	Session      SessionConfig
	Environment  string
	LogLevel     string
	SeedDemoData bool
	Version      string
}

type ServerConfig struct {
	Port int
	Host string
}

type SessionConfig struct {
	// Secret signs session access tokens. Required.
	Secret string

	// StoragePath is the file the current session is mirrored to so a
	// restart can resume without re-authenticating. Empty means the
	// session is only kept in memory.
	StoragePath string

	// ExpirySeconds is the fixed session lifetime measured from sign-in.
	ExpirySeconds int
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)
	v.SetDefault("SESSION_EXPIRY_SECONDS", 3600)
	v.SetDefault("SESSION_STORAGE_PATH", "")
	v.SetDefault("SEED_DEMO_DATA", true)

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	secret := v.GetString("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		Session: SessionConfig{
			Secret:        secret,
			StoragePath:   v.GetString("SESSION_STORAGE_PATH"),
			ExpirySeconds: v.GetInt("SESSION_EXPIRY_SECONDS"),
		},
		Environment:  v.GetString("ENVIRONMENT"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		SeedDemoData: v.GetBool("SEED_DEMO_DATA"),
		Version:      v.GetString("VERSION"),
	}

	return config, nil
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
