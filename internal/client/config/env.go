package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays cfg with the NETFLEX_* variables that are set. Unset
// variables leave the current value alone.
func parseEnv(cfg *Config, environ map[string]string) error {
	return env.ParseWithOptions(cfg, env.Options{Environment: environ})
}
