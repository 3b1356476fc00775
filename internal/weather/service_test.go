package weather

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/vcweather/internal/records"
)

var errMissing = errors.New("missing")

type fakeStore struct {
	mu      sync.Mutex
	entries []Entry
}

func (s *fakeStore) Save(e Entry) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = strconv.Itoa(len(s.entries) + 1)
	s.entries = append(s.entries, e)
	return e
}

func (s *fakeStore) Get(id string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, errMissing
}

func (s *fakeStore) View(id string, fn func(*Weather) error) error {
	e, err := s.Get(id)
	if err != nil {
		return err
	}
	return fn(e.Weather)
}

func (s *fakeStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return errMissing
}

func (s *fakeStore) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

func (s *fakeStore) Latest(location string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Query.Location == location {
			return s.entries[i], nil
		}
	}
	return Entry{}, errMissing
}

// locationSource echoes the requested location back as the document address
// and fails for locations listed in fail.
type locationSource struct {
	fail map[string]bool
}

func (s *locationSource) Name() string { return "echo" }

func (s *locationSource) Fetch(_ context.Context, q Query) (records.Record, error) {
	if s.fail[q.Location] {
		return nil, errors.New("upstream unavailable")
	}
	return records.Record{
		"address": q.Location,
		"days":    []any{map[string]any{"datetime": "2024-06-01", "tempmax": 21.5}},
	}, nil
}

func TestService_FetchAndStore(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, &locationSource{}, nil)

	entry, err := svc.FetchAndStore(context.Background(), Query{Location: "Paris"})
	require.NoError(t, err)
	assert.Equal(t, "1", entry.ID)
	assert.Equal(t, UnitGroupUS, entry.Query.UnitGroup)
	assert.False(t, entry.FetchedAt.IsZero())

	err = svc.View(entry.ID, func(w *Weather) error {
		tempmax, ok := w.TempmaxOnDay(records.ByKey("2024-06-01"))
		assert.True(t, ok)
		assert.Equal(t, 21.5, tempmax)
		return nil
	})
	require.NoError(t, err)

	latest, err := svc.Latest("Paris")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, latest.ID)

	_, err = svc.FetchAndStore(context.Background(), Query{})
	assert.Error(t, err)
	assert.Len(t, svc.List(), 1)

	require.NoError(t, svc.Delete(entry.ID))
	_, err = svc.Get(entry.ID)
	assert.ErrorIs(t, err, errMissing)
}

func TestService_FetchWithoutSource(t *testing.T) {
	svc := NewService(&fakeStore{}, nil, nil)

	_, err := svc.FetchAndStore(context.Background(), Query{Location: "Paris"})
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestService_Import(t *testing.T) {
	svc := NewService(&fakeStore{}, nil, nil)

	entry, err := svc.Import([]byte(sampleJSON))
	require.NoError(t, err)
	assert.Equal(t, "San Francisco", entry.Query.Location)

	days, err := entry.Weather.DailyDatetimes()
	require.NoError(t, err)
	assert.Len(t, days, 2)

	_, err = svc.Import([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestService_Refresh(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, &locationSource{fail: map[string]bool{"Atlantis": true}}, nil)

	err := svc.Refresh(context.Background(), []Query{
		{Location: "Paris"},
		{Location: "Atlantis"},
		{Location: "Rome"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Atlantis")
	assert.Len(t, store.List(), 2)

	_, err = svc.Latest("Rome")
	assert.NoError(t, err)

	assert.NoError(t, svc.Refresh(context.Background(), nil))
}
