package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/museumkeeper/internal/flagx"
	"github.com/dmitrijs2005/museumkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" from "zero", so a partial file only overrides what
// it names. Intervals use timex.Duration ("2s" or integer nanoseconds).
type JsonConfig struct {
	DBPath         *string         `json:"db_path"`
	PlacesBaseURL  *string         `json:"places_base_url"`
	PlacesAPIKey   *string         `json:"places_api_key"`
	SearchRadius   *int            `json:"search_radius"`
	PhotoMaxWidth  *int            `json:"photo_max_width"`
	PageTokenDelay *timex.Duration `json:"page_token_delay"`
	WikiBaseURL    *string         `json:"wiki_base_url"`
	HTTPTimeout    *timex.Duration `json:"http_timeout"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Without either flag nothing is loaded.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	setIf(&cfg.DBPath, jc.DBPath)
	setIf(&cfg.PlacesBaseURL, jc.PlacesBaseURL)
	setIf(&cfg.PlacesAPIKey, jc.PlacesAPIKey)
	setIf(&cfg.SearchRadius, jc.SearchRadius)
	setIf(&cfg.PhotoMaxWidth, jc.PhotoMaxWidth)
	setIf(&cfg.WikiBaseURL, jc.WikiBaseURL)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	if jc.PageTokenDelay != nil {
		cfg.PageTokenDelay = jc.PageTokenDelay.Duration
	}
	if jc.HTTPTimeout != nil {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
