// Package config loads the recordlens CLI configuration from
// recordlens.yml and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the recordlens configuration.
type Config struct {
	// DefaultConnection is the connection name used by models that do
	// not declare one.
	DefaultConnection string `mapstructure:"default_connection"`

	// Connections maps connection names to database settings.
	Connections map[string]Connection `mapstructure:"connections"`
}

// Connection represents one named database connection.
type Connection struct {
	Driver string `mapstructure:"driver"` // database/sql driver name: pgx, sqlite3
	URL    string `mapstructure:"url"`    // connection string / DSN
}

// Load reads the configuration from recordlens.yml or recordlens.yaml in
// the working directory. When no file exists, a DATABASE_URL environment
// variable populates the default connection with the pgx driver.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("default_connection", "default")

	v.SetConfigName("recordlens")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - fall back to the environment.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Connections == nil {
		config.Connections = make(map[string]Connection)
	}
	if _, ok := config.Connections[config.DefaultConnection]; !ok {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			config.Connections[config.DefaultConnection] = Connection{
				Driver: driverForURL(url),
				URL:    url,
			}
		}
	}

	return &config, nil
}

// Resolve returns the named connection, or an error listing the
// configured names when it is absent.
func (c *Config) Resolve(name string) (Connection, error) {
	if conn, ok := c.Connections[name]; ok {
		return conn, nil
	}

	names := make([]string, 0, len(c.Connections))
	for n := range c.Connections {
		names = append(names, n)
	}
	if len(names) == 0 {
		return Connection{}, fmt.Errorf("connection %q is not configured: add it to recordlens.yml or set DATABASE_URL", name)
	}
	return Connection{}, fmt.Errorf("connection %q is not configured (configured: %s)", name, strings.Join(names, ", "))
}

// driverForURL guesses the database/sql driver from a connection string.
func driverForURL(url string) string {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "pgx"
	case strings.HasSuffix(url, ".db"), strings.HasSuffix(url, ".sqlite"), url == ":memory:":
		return "sqlite3"
	default:
		return "pgx"
	}
}
