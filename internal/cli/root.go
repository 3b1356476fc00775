// Package cli implements the vcweather command line.
package cli

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/i474232898/vcweather/internal/config"
	"github.com/i474232898/vcweather/internal/weather"
	"github.com/i474232898/vcweather/internal/weather/providers"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vcweather",
	Short: "Fetch and edit Visual Crossing weather documents",
	Long: `vcweather fetches timeline documents from the Visual Crossing weather API
and exposes their days and hours for reading and editing, either once from
the command line or through an HTTP API.`,
	SilenceUsage: true,
}

// Hooks replaced in tests.
var (
	loadConfig = config.Load
	newSource  = func(cfg *config.AppConfig) weather.Source {
		client := &http.Client{Timeout: cfg.HTTPTimeout}
		return providers.NewVisualCrossingProvider(client, cfg.APIKey, providers.Options{
			BaseURL:           cfg.BaseURL,
			RequestsPerSecond: cfg.RateLimit,
			Burst:             cfg.RateBurst,
			Backoff:           cfg.Backoff(),
		})
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newLogger returns a text logger writing to the command's error stream.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
