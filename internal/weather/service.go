package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Service fetches documents from a Source and keeps them in a Store.
type Service struct {
	store  Store
	source Source
	logger *slog.Logger
}

// NewService creates a new Service.
func NewService(store Store, source Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		source: source,
		logger: logger,
	}
}

// FetchAndStore fetches the document described by q into a new Weather and
// stores it. Every call produces a new entry.
func (s *Service) FetchAndStore(ctx context.Context, q Query) (Entry, error) {
	if s.source == nil {
		return Entry{}, ErrNoSource
	}
	q = q.WithDefaults()

	w := NewWeather(s.source, s.logger)
	if _, err := w.FetchWeatherData(ctx, q); err != nil {
		return Entry{}, err
	}

	entry := s.store.Save(Entry{
		Query:     q,
		FetchedAt: time.Now().UTC(),
		Weather:   w,
	})
	s.logger.Info("stored weather document", "id", entry.ID, "location", q.Location)
	return entry, nil
}

// Import stores a document supplied by the caller instead of fetched upstream.
// The entry's query location is taken from the document's address.
func (s *Service) Import(data []byte) (Entry, error) {
	w := NewWeather(s.source, s.logger)
	if err := w.LoadJSON(data); err != nil {
		return Entry{}, err
	}
	address, _ := w.Address()

	entry := s.store.Save(Entry{
		Query:     Query{Location: address},
		FetchedAt: time.Now().UTC(),
		Weather:   w,
	})
	s.logger.Info("imported weather document", "id", entry.ID, "location", address)
	return entry, nil
}

// Refresh fetches every query concurrently. Failures are logged and joined;
// successful fetches are stored regardless.
func (s *Service) Refresh(ctx context.Context, queries []Query) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, q := range queries {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if _, err := s.FetchAndStore(ctx, q); err != nil {
				s.logger.Warn("refresh failed", "location", q.Location, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", q.Location, err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}

// Get delegates to the underlying store.
func (s *Service) Get(id string) (Entry, error) {
	return s.store.Get(id)
}

// View runs fn with exclusive access to a stored document.
func (s *Service) View(id string, fn func(*Weather) error) error {
	return s.store.View(id, fn)
}

// Delete delegates to the underlying store.
func (s *Service) Delete(id string) error {
	return s.store.Delete(id)
}

// List delegates to the underlying store.
func (s *Service) List() []Entry {
	return s.store.List()
}

// Latest delegates to the underlying store.
func (s *Service) Latest(location string) (Entry, error) {
	return s.store.Latest(location)
}
