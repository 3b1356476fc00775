package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/vcweather/internal/weather"
)

// jobTimeout bounds a single refresh run.
const jobTimeout = 30 * time.Second

// Refresher fetches and stores documents for a set of queries.
type Refresher interface {
	Refresh(ctx context.Context, queries []weather.Query) error
}

// Scheduler periodically refreshes the documents of tracked locations.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Refresher
	queries   []weather.Query
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a new Scheduler.
func New(queries []weather.Query, interval time.Duration, service Refresher, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		queries:   queries,
		interval:  interval,
		logger:    logger.With("component", "scheduler"),
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.queries) == 0 {
		s.logger.Info("no locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) run() {
	s.logger.Info("running weather refresh job", "locations", len(s.queries))

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.service.Refresh(ctx, s.queries); err != nil {
		s.logger.Warn("weather refresh job finished with errors", "error", err)
		return
	}
	s.logger.Info("completed weather refresh job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
