package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/museumkeeper/internal/client/places"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "museums.db", c.DBPath)
	assert.Equal(t, places.DefaultBaseURL, c.PlacesBaseURL)
	assert.Equal(t, 10000, c.SearchRadius)
	assert.Equal(t, 2*time.Second, c.PageTokenDelay)
	assert.Equal(t, 10*time.Second, c.HTTPTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_NoSources(t *testing.T) {
	t.Setenv("PLACES_API_KEY", "")
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"db_path":          "from-json.db",
		"places_api_key":   "json-key",
		"search_radius":    500,
		"page_token_delay": "1s",
		"log_level":        "debug",
	})
	t.Setenv("PLACES_API_KEY", "env-key")
	t.Setenv("MUSEUMS_LOG_LEVEL", "warn")

	cfg, err := LoadConfig([]string{"-c", path, "-l", "error", "-t", "3"})
	require.NoError(t, err)

	want := defaults()
	want.DBPath = "from-json.db"
	want.PlacesAPIKey = "env-key"
	want.SearchRadius = 500
	want.PageTokenDelay = time.Second
	want.LogLevel = "error"
	want.HTTPTimeout = 3 * time.Second
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-d", "x.db", "-k", "key", "-r", "750", "-t", "5", "-l", "debug", "-f", "json"},
			expected: &Config{DBPath: "x.db", PlacesAPIKey: "key", SearchRadius: 750,
				HTTPTimeout: 5 * time.Second, LogLevel: "debug", LogFormat: "json"},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-x", "1", "-config", "ignored.json", "-d", "y.db"},
			expected: &Config{DBPath: "y.db"},
		},
		{name: "bad radius", args: []string{"-r", "far"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestPlaces(t *testing.T) {
	c := defaults()
	c.PlacesAPIKey = "k"

	assert.Equal(t, places.Config{
		BaseURL:        places.DefaultBaseURL,
		APIKey:         "k",
		Timeout:        10 * time.Second,
		PageTokenDelay: places.DefaultPageTokenDelay,
		PhotoMaxWidth:  places.DefaultPhotoMaxWidth,
	}, c.Places())
}

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}
