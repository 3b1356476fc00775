package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/vcweather/internal/api/http"
	"github.com/i474232898/vcweather/internal/scheduler"
	"github.com/i474232898/vcweather/internal/store"
	"github.com/i474232898/vcweather/internal/weather"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and refresh tracked locations",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		logger.Warn("VC_API_KEY is not set; fetches will fail")
	}

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxDocuments, cfg.StoreMaxAge)

	// Core service orchestrating the upstream source and the store.
	service := weather.NewService(memStore, newSource(cfg), logger)

	// Scheduler that periodically refreshes tracked locations.
	sched := scheduler.New(cfg.Locations, cfg.FetchInterval, service, logger)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	app := httpapi.NewApp(service, httpapi.Options{AccessLog: true})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	// Wait for termination.
	select {
	case <-cmd.Context().Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
	return nil
}
