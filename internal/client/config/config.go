package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the netflex CLI.
type Config struct {
	APIEndpoint    string        `env:"NETFLEX_API_ENDPOINT"`
	DatabasePath   string        `env:"NETFLEX_DB_PATH"`
	RequestTimeout time.Duration `env:"NETFLEX_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"NETFLEX_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpoint = "https://adet2a-0tf2.onrender.com/api"
	c.DatabasePath = "netflex.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig builds a Config from the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], nil)
}

// Load applies defaults, then the JSON file named by -c/-config, then the
// environment, then flags. Later sources take precedence. A nil environ
// reads the process environment.
func Load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
