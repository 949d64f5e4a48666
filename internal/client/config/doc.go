// Package config loads runtime configuration for the netflex CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables NETFLEX_API_ENDPOINT, NETFLEX_DB_PATH,
//     NETFLEX_REQUEST_TIMEOUT and NETFLEX_LOG_LEVEL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the user directory API
//	-d string   path of the local database
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_endpoint": "https://api.example.com/api",
//	  "database_path": "netflex.db",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
package config
