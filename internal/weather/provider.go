package weather

import (
	"context"

	"github.com/i474232898/vcweather/internal/records"
)

// Source abstracts the timeline web API. It returns the decoded JSON document.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) (records.Record, error)
}

// Store is the contract the in-memory document store must satisfy.
// View serializes access to a stored Weather; callers must not retain it
// after fn returns.
type Store interface {
	Save(entry Entry) Entry
	Get(id string) (Entry, error)
	View(id string, fn func(*Weather) error) error
	Delete(id string) error
	List() []Entry
	Latest(location string) (Entry, error)
}
