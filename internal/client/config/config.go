package config

import (
	"time"

	"github.com/dmitrijs2005/museumkeeper/internal/client/places"
)

// Config holds runtime settings for the museums CLI.
//
// Units: SearchRadius is in meters, PhotoMaxWidth in pixels.
type Config struct {
	DBPath string `env:"MUSEUMS_DB_PATH"`

	PlacesBaseURL  string        `env:"PLACES_BASE_URL"`
	PlacesAPIKey   string        `env:"PLACES_API_KEY"`
	SearchRadius   int           `env:"MUSEUMS_SEARCH_RADIUS"`
	PhotoMaxWidth  int           `env:"PLACES_PHOTO_MAX_WIDTH"`
	PageTokenDelay time.Duration `env:"PLACES_PAGE_TOKEN_DELAY"`

	// WikiBaseURL overrides the per-article wiki host when set.
	WikiBaseURL string `env:"WIKI_BASE_URL"`

	HTTPTimeout time.Duration `env:"MUSEUMS_HTTP_TIMEOUT"`

	LogLevel  string `env:"MUSEUMS_LOG_LEVEL"`
	LogFormat string `env:"MUSEUMS_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "museums.db"
	c.PlacesBaseURL = places.DefaultBaseURL
	c.PlacesAPIKey = ""
	c.SearchRadius = 10000
	c.PhotoMaxWidth = places.DefaultPhotoMaxWidth
	c.PageTokenDelay = places.DefaultPageTokenDelay
	c.WikiBaseURL = ""
	c.HTTPTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file
// named by -c/-config, the environment and finally the flags in args
// (usually os.Args[1:]). Later sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Places returns the places client settings.
func (c *Config) Places() places.Config {
	return places.Config{
		BaseURL:        c.PlacesBaseURL,
		APIKey:         c.PlacesAPIKey,
		Timeout:        c.HTTPTimeout,
		PageTokenDelay: c.PageTokenDelay,
		PhotoMaxWidth:  c.PhotoMaxWidth,
	}
}
