package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/vcweather/internal/weather"
)

var (
	// ErrNotFound is returned when no document is stored under an ID or location.
	ErrNotFound = errors.New("weather document not found")
)

// slot pairs a stored entry with the mutex that serializes access to its document.
type slot struct {
	mu    sync.Mutex
	entry weather.Entry
}

// MemoryStore is a concurrency-safe in-memory workspace of weather documents.
type MemoryStore struct {
	mu sync.RWMutex

	// key: document ID
	data map[string]*slot
	// IDs in insertion order, oldest first
	order []string

	// retention configuration
	maxDocuments int           // max number of stored documents
	maxAge       time.Duration // optional max age of a document
	now          func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxDocuments or maxAge is <= 0, it is treated as unlimited.
func NewMemoryStore(maxDocuments int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:         make(map[string]*slot),
		maxDocuments: maxDocuments,
		maxAge:       maxAge,
		now:          time.Now,
	}
}

// Save stores entry under a new ID and enforces retention. The stored entry is
// returned with its ID set.
func (s *MemoryStore) Save(entry weather.Entry) weather.Entry {
	entry.ID = uuid.New().String()
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = s.now().UTC()
	}
	if entry.Weather == nil {
		entry.Weather = weather.NewWeather(nil, nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[entry.ID] = &slot{entry: entry}
	s.order = append(s.order, entry.ID)

	// Enforce retention by count.
	if s.maxDocuments > 0 && len(s.order) > s.maxDocuments {
		over := len(s.order) - s.maxDocuments
		for _, id := range s.order[:over] {
			delete(s.data, id)
		}
		s.order = slices.Clone(s.order[over:])
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := s.now().Add(-s.maxAge)
		kept := s.order[:0]
		for _, id := range s.order {
			if s.data[id].entry.FetchedAt.Before(cutoff) {
				delete(s.data, id)
				continue
			}
			kept = append(kept, id)
		}
		s.order = kept
	}

	return entry
}

// Get returns the entry stored under id. The entry's Weather must only be
// used through View.
func (s *MemoryStore) Get(id string) (weather.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, ok := s.data[id]
	if !ok {
		return weather.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sl.entry, nil
}

// View runs fn with exclusive access to the document stored under id.
func (s *MemoryStore) View(id string, fn func(*weather.Weather) error) error {
	s.mu.RLock()
	sl, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()
	return fn(sl.entry.Weather)
}

// Delete removes the entry stored under id.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.data, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

// List returns every stored entry, oldest first.
func (s *MemoryStore) List() []weather.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]weather.Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.data[id].entry)
	}
	return out
}

// Latest returns the most recently stored entry whose query location matches
// location, ignoring case.
func (s *MemoryStore) Latest(location string) (weather.Entry, error) {
	location = strings.TrimSpace(location)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.order) - 1; i >= 0; i-- {
		entry := s.data[s.order[i]].entry
		if strings.EqualFold(entry.Query.Location, location) {
			return entry, nil
		}
	}
	return weather.Entry{}, fmt.Errorf("%w: location %q", ErrNotFound, location)
}
