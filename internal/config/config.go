package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/i474232898/vcweather/internal/weather"
	"github.com/i474232898/vcweather/internal/weather/providers"
)

var validate = validator.New()

type AppConfig struct {
	APIKey  string
	BaseURL string `validate:"required,url"`

	// Request defaults applied to tracked locations and CLI fetches.
	UnitGroup weather.UnitGroup `validate:"oneof=us metric uk base"`
	Include   string
	Elements  []string

	// Upstream throttling and resilience. RateLimit <= 0 disables throttling.
	RateLimit   float64
	RateBurst   int `validate:"gte=0"`
	MaxRetries  int `validate:"gte=0"`
	HTTPTimeout time.Duration

	// FetchInterval controls how often tracked locations are refreshed.
	FetchInterval time.Duration

	// Locations to track.
	Locations []weather.Query

	// In-memory store retention.
	StoreMaxDocuments int           // max number of stored documents (0 = unlimited)
	StoreMaxAge       time.Duration // max age of a document (0 = unlimited)

	Port string `validate:"required"`

	// ConfigFile is the TOML file that was merged in, if any.
	ConfigFile string
}

// fileConfig is the shape of the optional TOML file.
type fileConfig struct {
	Locations []weather.Query `toml:"locations"`
}

// Load reads configuration from .env, the environment and the optional TOML
// file named by VCWEATHER_CONFIG, with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	cfg := &AppConfig{}

	cfg.APIKey = os.Getenv("VC_API_KEY")
	cfg.BaseURL = getenvDefault("VC_BASE_URL", providers.DefaultBaseURL)
	cfg.UnitGroup = weather.UnitGroup(getenvDefault("VC_UNIT_GROUP", string(weather.UnitGroupUS)))
	cfg.Include = getenvDefault("VC_INCLUDE", "hours")
	cfg.Elements = splitList(os.Getenv("VC_ELEMENTS"), ",")

	var err error
	if cfg.RateLimit, err = getenvFloat("VC_RATE_LIMIT", 0); err != nil {
		return nil, err
	}
	if cfg.RateBurst, err = getenvInt("VC_RATE_BURST", 1); err != nil {
		return nil, err
	}
	if cfg.MaxRetries, err = getenvInt("VC_MAX_RETRIES", 0); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "15s"); err != nil {
		return nil, err
	}

	// Scheduler interval: default 15 minutes.
	if cfg.FetchInterval, err = getenvDuration("FETCH_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	// Store retention.
	if cfg.StoreMaxDocuments, err = getenvInt("STORE_MAX_DOCUMENTS", 100); err != nil {
		return nil, err
	}
	if cfg.StoreMaxAge, err = getenvDuration("STORE_MAX_AGE", "24h"); err != nil {
		return nil, err
	}
	cfg.Port = getenvDefault("PORT", "8080")

	for _, loc := range splitList(os.Getenv("TRACKED_LOCATIONS"), ";") {
		cfg.Locations = append(cfg.Locations, weather.Query{Location: loc})
	}

	if path := os.Getenv("VCWEATHER_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	for i := range cfg.Locations {
		cfg.Locations[i] = cfg.Defaults(cfg.Locations[i])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults fills the request defaults of cfg into q where q leaves them unset.
func (c *AppConfig) Defaults(q weather.Query) weather.Query {
	if q.UnitGroup == "" {
		q.UnitGroup = c.UnitGroup
	}
	if q.Include == "" {
		q.Include = c.Include
	}
	if len(q.Elements) == 0 && len(c.Elements) > 0 {
		q.Elements = append([]string(nil), c.Elements...)
	}
	return q.WithDefaults()
}

// Validate checks the loaded configuration, including every tracked location.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, q := range c.Locations {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("invalid tracked location %q: %w", q.Location, err)
		}
	}
	return nil
}

// Backoff returns the retry settings for the upstream client.
func (c *AppConfig) Backoff() providers.BackoffConfig {
	return providers.BackoffConfig{
		MaxRetries:      c.MaxRetries,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// mergeFile appends the locations listed in the TOML file at path.
func (c *AppConfig) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s does not exist", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	c.Locations = append(c.Locations, fc.Locations...)
	c.ConfigFile = path
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
