package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/museumkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   database file path
//	-k string   places API key
//	-r int      search radius in meters
//	-t int      HTTP timeout in seconds
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json)
//
// args is filtered with flagx.FilterArgs so flags owned by other loaders
// (-c/-config) do not break parsing.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-k", "-r", "-t", "-l", "-f"})

	fs := flag.NewFlagSet("museums", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "database file path")
	fs.StringVar(&cfg.PlacesAPIKey, "k", cfg.PlacesAPIKey, "places API key")
	fs.IntVar(&cfg.SearchRadius, "r", cfg.SearchRadius, "search radius (in meters)")
	timeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	cfg.HTTPTimeout = time.Duration(*timeout) * time.Second
	return nil
}
