// Package config loads runtime configuration for the museums CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables named by the env tags of Config, read with
//     cleanenv (PLACES_API_KEY, MUSEUMS_DB_PATH, ...).
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
// Intervals use timex.Duration, so they can be strings like "2s" or integer
// nanoseconds. Keys that are absent keep their previous value:
//
//	{
//	  "db_path": "museums.db",
//	  "places_api_key": "...",
//	  "search_radius": 10000,
//	  "page_token_delay": "2s",
//	  "http_timeout": "10s",
//	  "log_level": "info"
//	}
package config
