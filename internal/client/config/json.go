package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/netflex/internal/flagx"
	"github.com/dmitrijs2005/netflex/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations may be given
// as strings like "15s" or as integer nanoseconds.
type JsonConfig struct {
	APIEndpoint    string         `json:"api_endpoint"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
}

// parseJSON overlays cfg with the file given by -c or -config. Fields absent
// from the file keep their current value.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.APIEndpoint != "" {
		cfg.APIEndpoint = jc.APIEndpoint
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
