package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/vcweather/internal/weather"
	"github.com/i474232898/vcweather/internal/weather/providers"
)

var envKeys = []string{
	"VC_API_KEY", "VC_BASE_URL", "VC_UNIT_GROUP", "VC_INCLUDE", "VC_ELEMENTS",
	"VC_RATE_LIMIT", "VC_RATE_BURST", "VC_MAX_RETRIES", "HTTP_TIMEOUT",
	"FETCH_INTERVAL", "STORE_MAX_DOCUMENTS", "STORE_MAX_AGE", "PORT",
	"TRACKED_LOCATIONS", "VCWEATHER_CONFIG",
}

// clearEnv isolates a test from the developer's environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, providers.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, weather.UnitGroupUS, cfg.UnitGroup)
	assert.Equal(t, "hours", cfg.Include)
	assert.Empty(t, cfg.Elements)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 15*time.Minute, cfg.FetchInterval)
	assert.Equal(t, 100, cfg.StoreMaxDocuments)
	assert.Equal(t, 24*time.Hour, cfg.StoreMaxAge)
	assert.Equal(t, "8080", cfg.Port)
	assert.Zero(t, cfg.MaxRetries)
	assert.Empty(t, cfg.Locations)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("VC_API_KEY", "abc")
	t.Setenv("VC_UNIT_GROUP", "metric")
	t.Setenv("VC_ELEMENTS", "datetime, temp,,tempmax")
	t.Setenv("VC_RATE_LIMIT", "2.5")
	t.Setenv("VC_MAX_RETRIES", "2")
	t.Setenv("TRACKED_LOCATIONS", "London,UK; Paris,France ;")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, []string{"datetime", "temp", "tempmax"}, cfg.Elements)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 2, cfg.Backoff().MaxRetries)
	require.Len(t, cfg.Locations, 2)
	assert.Equal(t, weather.Query{
		Location:  "London,UK",
		UnitGroup: weather.UnitGroupMetric,
		Include:   "hours",
		Elements:  []string{"datetime", "temp", "tempmax"},
	}, cfg.Locations[0])
	assert.Equal(t, "Paris,France", cfg.Locations[1].Location)
}

func TestLoad_TOMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "vcweather.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[locations]]
location = "Tokyo"
from = "2024-03-01"
to = "2024-03-07"
unit_group = "metric"

[[locations]]
location = "Denver,CO"
include = "days"
elements = ["datetime", "snow"]
`), 0o600))
	t.Setenv("VCWEATHER_CONFIG", path)
	t.Setenv("TRACKED_LOCATIONS", "Oslo")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFile)
	require.Len(t, cfg.Locations, 3)
	assert.Equal(t, "Oslo", cfg.Locations[0].Location)
	assert.Equal(t, weather.Query{
		Location:  "Tokyo",
		From:      "2024-03-01",
		To:        "2024-03-07",
		UnitGroup: weather.UnitGroupMetric,
		Include:   "hours",
	}, cfg.Locations[1])
	assert.Equal(t, "days", cfg.Locations[2].Include)
	assert.Equal(t, weather.UnitGroupUS, cfg.Locations[2].UnitGroup)
	assert.Equal(t, []string{"datetime", "snow"}, cfg.Locations[2].Elements)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad interval", env: map[string]string{"FETCH_INTERVAL": "soon"}},
		{name: "bad timeout", env: map[string]string{"HTTP_TIMEOUT": "10"}},
		{name: "bad max age", env: map[string]string{"STORE_MAX_AGE": "forever"}},
		{name: "bad unit group", env: map[string]string{"VC_UNIT_GROUP": "kelvin"}},
		{name: "negative retries", env: map[string]string{"VC_MAX_RETRIES": "-1"}},
		{name: "malformed retries", env: map[string]string{"VC_MAX_RETRIES": "abc"}},
		{name: "malformed burst", env: map[string]string{"VC_RATE_BURST": "1.5"}},
		{name: "malformed rate limit", env: map[string]string{"VC_RATE_LIMIT": "fast"}},
		{name: "malformed max documents", env: map[string]string{"STORE_MAX_DOCUMENTS": "many"}},
		{name: "missing file", env: map[string]string{"VCWEATHER_CONFIG": "/nonexistent/vcweather.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_InvalidTrackedLocation(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[locations]]\nlocation = \"Rome\"\nfrom = \"03/01/2024\"\n"), 0o600))
	t.Setenv("VCWEATHER_CONFIG", path)

	_, err := Load()
	assert.ErrorContains(t, err, "Rome")
}

func TestLoad_MalformedNumberNamesVariable(t *testing.T) {
	clearEnv(t)
	t.Setenv("VC_MAX_RETRIES", "abc")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid VC_MAX_RETRIES")
}
